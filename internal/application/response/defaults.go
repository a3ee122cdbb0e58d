package response

import "github.com/Belkouche/jarvis-sub000/internal/domain/template"

// defaultTemplates is the compiled-in fallback table, consulted at each
// specificity level after the persisted templates. Etat/sous-état values are
// the external system's opaque status codes.
var defaultTemplates = []template.ResponseTemplate{
	{
		Etat:           "En cours",
		SousEtat:       "BO fixe",
		BodyFR:         "Votre contrat {contract} est en cours de traitement au back-office. Votre dossier avance normalement.",
		BodyAR:         "عقدكم {contract} قيد المعالجة لدى المكتب الخلفي. ملفكم يتقدم بشكل عادي.",
		AllowComplaint: true,
	},
	{
		Etat:           "En cours",
		SousEtat:       "Planifié",
		BodyFR:         "Votre installation pour le contrat {contract} est planifiée le {date}. Un technicien vous contactera.",
		BodyAR:         "تم تحديد موعد تركيب عقدكم {contract} يوم {date}. سيتصل بكم تقني.",
		AllowComplaint: true,
	},
	{
		Etat:           "En cours",
		BodyFR:         "Votre contrat {contract} est en cours de traitement (étape : {sous_etat}). Nous vous tiendrons informé.",
		BodyAR:         "عقدكم {contract} قيد المعالجة (المرحلة: {sous_etat}). سنبقيكم على اطلاع.",
		AllowComplaint: true,
	},
	{
		Etat:           "Fermé",
		BodyFR:         "Votre contrat {contract} est finalisé : votre équipement est installé et votre ligne est active.",
		BodyAR:         "تم إنهاء عقدكم {contract}: تم تركيب التجهيزات وخطكم نشط.",
		AllowComplaint: false,
	},
	{
		Etat:           "Annulé",
		BodyFR:         "Votre contrat {contract} a été annulé. Contactez votre point de vente pour plus d'informations.",
		BodyAR:         "تم إلغاء عقدكم {contract}. اتصلوا بنقطة البيع لمزيد من المعلومات.",
		AllowComplaint: true,
	},
	{
		Etat:           "En attente",
		BodyFR:         "Votre contrat {contract} est en attente ({sous_etat}). Nous reviendrons vers vous dès que possible.",
		BodyAR:         "عقدكم {contract} في وضع الانتظار ({sous_etat}). سنعود إليكم في أقرب وقت.",
		AllowComplaint: true,
	},
}

// genericTemplate synthesizes a reply echoing the raw status when nothing
// matched at any specificity level.
var genericTemplate = template.ResponseTemplate{
	BodyFR:         "Votre contrat {contract} est actuellement dans l'état : {etat} {sous_etat}.",
	BodyAR:         "عقدكم {contract} حاليا في الحالة: {etat} {sous_etat}.",
	AllowComplaint: true,
}
