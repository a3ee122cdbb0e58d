package response

// Bilingual carries the two independent reply bodies. Neither is ever
// machine-translated from the other.
type Bilingual struct {
	FR string
	AR string
}

// Fixed copy used by the orchestrator's short-circuit branches. Every error
// path has a pre-defined FR/AR string: the customer always gets an answer.
var (
	SpamCopy = Bilingual{
		FR: "Votre message n'a pas pu être traité. Merci d'envoyer une demande claire concernant votre contrat.",
		AR: "تعذر معالجة رسالتكم. المرجو إرسال طلب واضح بخصوص عقدكم.",
	}

	WelcomeCopy = Bilingual{
		FR: "Bonjour ! Envoyez-nous votre numéro de contrat (format F0000000D) pour connaître l'état de votre installation, ou décrivez votre problème.",
		AR: "مرحبا! أرسلوا لنا رقم عقدكم (بالصيغة F0000000D) لمعرفة حالة التركيب، أو صفوا لنا مشكلتكم.",
	}

	InvalidFormatCopy = Bilingual{
		FR: "Le numéro de contrat est invalide. Le format attendu est F suivi de 7 chiffres puis D, par exemple F0823846D.",
		AR: "رقم العقد غير صحيح. الصيغة المطلوبة هي F متبوعة بـ7 أرقام ثم D، مثال: F0823846D.",
	}

	NotFoundCopy = Bilingual{
		FR: "Aucun contrat trouvé avec le numéro {contract}. Vérifiez le numéro ou réessayez plus tard si votre contrat est récent.",
		AR: "لم يتم العثور على أي عقد بالرقم {contract}. تحققوا من الرقم أو أعيدوا المحاولة لاحقا إذا كان عقدكم حديثا.",
	}

	ServiceUnavailableCopy = Bilingual{
		FR: "Notre service de suivi est momentanément indisponible. Merci de réessayer dans quelques minutes.",
		AR: "خدمة التتبع غير متوفرة مؤقتا. المرجو إعادة المحاولة بعد بضع دقائق.",
	}

	ComplaintInvitationSuffix = Bilingual{
		FR: "\n\nSi vous rencontrez un problème, répondez en décrivant votre réclamation et nous la prendrons en charge.",
		AR: "\n\nإذا كنتم تواجهون مشكلا، أجيبوا بوصف شكايتكم وسنتكفل بها.",
	}

	ComplaintAcknowledgedCopy = Bilingual{
		FR: "Votre réclamation a bien été enregistrée sous la référence {complaint}. Notre équipe vous recontactera rapidement.",
		AR: "تم تسجيل شكايتكم تحت المرجع {complaint}. سيتواصل معكم فريقنا قريبا.",
	}
)
