package complaint

import (
	"regexp"

	"github.com/Belkouche/jarvis-sub000/internal/domain/analysis"
	vo "github.com/Belkouche/jarvis-sub000/internal/domain/complaint/valueobjects"
)

// Per-category keyword lists, checked by case-insensitive substring
// containment. Languages other than Arabic use the French set.
var categoryKeywords = map[analysis.Language]map[vo.Category][]string{
	analysis.LangFrench: {
		vo.CategoryDelay: {
			"retard", "délai", "delai", "attente", "toujours pas", "depuis",
			"ça fait", "ca fait", "rien reçu", "rien recu", "aucune nouvelle",
		},
		vo.CategoryQuality: {
			"lent", "lente", "coupure", "coupe", "instable", "mauvaise qualité",
			"mauvaise qualite", "ne marche pas", "ne fonctionne pas", "panne",
			"débit", "debit", "déconnecte", "deconnecte",
		},
		vo.CategoryService: {
			"technicien", "rendez-vous", "rdv", "personne", "injoignable",
			"pas venu", "absent", "mal parlé", "mal parle", "service client",
		},
		vo.CategoryBilling: {
			"facture", "paiement", "payé", "paye", "prélevé", "preleve",
			"remboursement", "prix", "montant", "facturation",
		},
		vo.CategoryGeneral: {
			"problème", "probleme", "plainte", "réclamation", "reclamation",
			"insatisfait", "mécontent", "mecontent", "inacceptable",
		},
	},
	analysis.LangArabic: {
		vo.CategoryDelay: {
			"تأخير", "تأخر", "انتظار", "مازال", "من مدة", "حتى الآن", "والو",
		},
		vo.CategoryQuality: {
			"بطيء", "ضعيف", "انقطاع", "مقطوع", "خايب", "ما خدامش", "عطل",
		},
		vo.CategoryService: {
			"تقني", "موعد", "ما جاش", "ما جاوبنيش", "الاستقبال", "خدمة الزبناء",
		},
		vo.CategoryBilling: {
			"فاتورة", "الأداء", "خلصت", "استرجاع", "الثمن", "المبلغ",
		},
		vo.CategoryGeneral: {
			"مشكل", "مشكلة", "شكاية", "شكوى", "غير راضي", "ما يمكنش",
		},
	},
}

// Urgency tiers checked in order: a high match wins outright, then medium,
// else the complaint defaults to low priority.
var highUrgencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)urgent`),
	regexp.MustCompile(`(?i)depuis\s+\d+\s+semaine`),
	regexp.MustCompile(`(?i)depuis\s+\d+\s+mois`),
	regexp.MustCompile(`(?i)inadmissible|inacceptable|scandale`),
	regexp.MustCompile(`مستعجل|عاجل`),
	regexp.MustCompile(`منذ\s+أسابيع|من\s+شهر`),
}

var mediumUrgencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)depuis\s+\d+\s+jour`),
	regexp.MustCompile(`(?i)rapidement|vite|toujours\s+rien`),
	regexp.MustCompile(`(?i)plusieurs\s+fois|encore\s+une\s+fois`),
	regexp.MustCompile(`من\s+أيام|بزاف\s+المرات`),
}
