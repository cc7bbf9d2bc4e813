package i18n

var locales = map[string]map[MessageKey]string{
	"en": {
		AppTitle:          "Global Scholarship Hub",
		SearchPlaceholder: "Search scholarships...",
		FilterCountry:     "Country",
		FilterDegree:      "Degree level",
		FilterSubject:     "Subject",
		FilterAll:         "All",
		ClearFilters:      "Clear filters",
		ResultsCount:      "%d scholarships found",
		NoResults:         "No scholarships match your filters.",
		ColumnName:        "name",
		ColumnCountry:     "country",
		ColumnDegree:      "degree",
		ColumnDeadline:    "deadline",
		ColumnDaysLeft:    "days left",
		ColumnLink:        "link",
		DaysLeft:          "%d days left",
		Expired:           "expired",
		NoDeadline:        "no deadline",
		Urgent:            "urgent",
		Featured:          "featured",
		Amount:            "Amount",
		Provider:          "Provider",
		Eligibility:       "Eligibility",
		ApplyNow:          "Apply now",
		ContactSuccess:    "Thank you! Your message has been received.",
	},
	"fr": {
		AppTitle:          "Global Scholarship Hub",
		SearchPlaceholder: "Rechercher des bourses...",
		FilterCountry:     "Pays",
		FilterDegree:      "Niveau d'études",
		FilterSubject:     "Domaine",
		FilterAll:         "Tous",
		ClearFilters:      "Effacer les filtres",
		ResultsCount:      "%d bourses trouvées",
		NoResults:         "Aucune bourse ne correspond à vos filtres.",
		ColumnName:        "nom",
		ColumnCountry:     "pays",
		ColumnDegree:      "niveau",
		ColumnDeadline:    "date limite",
		ColumnDaysLeft:    "jours restants",
		ColumnLink:        "lien",
		DaysLeft:          "%d jours restants",
		Expired:           "expirée",
		NoDeadline:        "sans date limite",
		Urgent:            "urgent",
		Featured:          "à la une",
		Amount:            "Montant",
		Provider:          "Organisme",
		Eligibility:       "Éligibilité",
		ApplyNow:          "Postuler",
		ContactSuccess:    "Merci ! Votre message a bien été reçu.",
	},
	"pt": {
		AppTitle:          "Global Scholarship Hub",
		SearchPlaceholder: "Pesquisar bolsas...",
		FilterCountry:     "País",
		FilterDegree:      "Nível de ensino",
		FilterSubject:     "Área",
		FilterAll:         "Todos",
		ClearFilters:      "Limpar filtros",
		ResultsCount:      "%d bolsas encontradas",
		NoResults:         "Nenhuma bolsa corresponde aos filtros.",
		ColumnName:        "nome",
		ColumnCountry:     "país",
		ColumnDegree:      "nível",
		ColumnDeadline:    "prazo",
		ColumnDaysLeft:    "dias restantes",
		ColumnLink:        "link",
		DaysLeft:          "%d dias restantes",
		Expired:           "encerrada",
		NoDeadline:        "sem prazo",
		Urgent:            "urgente",
		Featured:          "destaque",
		Amount:            "Valor",
		Provider:          "Instituição",
		Eligibility:       "Elegibilidade",
		ApplyNow:          "Candidatar-se",
		ContactSuccess:    "Obrigado! Sua mensagem foi recebida.",
	},
	"de": {
		AppTitle:          "Global Scholarship Hub",
		SearchPlaceholder: "Stipendien suchen...",
		FilterCountry:     "Land",
		FilterDegree:      "Abschluss",
		FilterSubject:     "Fachrichtung",
		FilterAll:         "Alle",
		ClearFilters:      "Filter zurücksetzen",
		ResultsCount:      "%d Stipendien gefunden",
		NoResults:         "Keine Stipendien entsprechen Ihren Filtern.",
		ColumnName:        "name",
		ColumnCountry:     "land",
		ColumnDegree:      "abschluss",
		ColumnDeadline:    "frist",
		ColumnDaysLeft:    "tage übrig",
		ColumnLink:        "link",
		DaysLeft:          "noch %d Tage",
		Expired:           "abgelaufen",
		NoDeadline:        "keine Frist",
		Urgent:            "dringend",
		Featured:          "empfohlen",
		Amount:            "Betrag",
		Provider:          "Anbieter",
		Eligibility:       "Voraussetzungen",
		ApplyNow:          "Jetzt bewerben",
		ContactSuccess:    "Vielen Dank! Ihre Nachricht ist eingegangen.",
	},
	"ar": {
		AppTitle:          "مركز المنح الدراسية العالمي",
		SearchPlaceholder: "ابحث عن المنح...",
		FilterCountry:     "الدولة",
		FilterDegree:      "المستوى الدراسي",
		FilterSubject:     "التخصص",
		FilterAll:         "الكل",
		ClearFilters:      "مسح الفلاتر",
		ResultsCount:      "تم العثور على %d منحة",
		NoResults:         "لا توجد منح مطابقة.",
		ColumnName:        "الاسم",
		ColumnCountry:     "الدولة",
		ColumnDegree:      "المستوى",
		ColumnDeadline:    "الموعد النهائي",
		ColumnDaysLeft:    "الأيام المتبقية",
		ColumnLink:        "الرابط",
		DaysLeft:          "متبقي %d يوم",
		Expired:           "منتهية",
		NoDeadline:        "بدون موعد نهائي",
		Urgent:            "عاجل",
		Featured:          "مميزة",
		Amount:            "القيمة",
		Provider:          "الجهة المانحة",
		Eligibility:       "الأهلية",
		ApplyNow:          "قدّم الآن",
		ContactSuccess:    "شكراً لك! تم استلام رسالتك.",
	},
	"zh": {
		AppTitle:          "全球奖学金中心",
		SearchPlaceholder: "搜索奖学金...",
		FilterCountry:     "国家",
		FilterDegree:      "学历层次",
		FilterSubject:     "学科",
		FilterAll:         "全部",
		ClearFilters:      "清除筛选",
		ResultsCount:      "找到 %d 项奖学金",
		NoResults:         "没有符合条件的奖学金。",
		ColumnName:        "名称",
		ColumnCountry:     "国家",
		ColumnDegree:      "学历",
		ColumnDeadline:    "截止日期",
		ColumnDaysLeft:    "剩余天数",
		ColumnLink:        "链接",
		DaysLeft:          "剩余 %d 天",
		Expired:           "已截止",
		NoDeadline:        "无截止日期",
		Urgent:            "紧急",
		Featured:          "精选",
		Amount:            "金额",
		Provider:          "提供方",
		Eligibility:       "申请条件",
		ApplyNow:          "立即申请",
		ContactSuccess:    "谢谢！我们已收到您的留言。",
	},
}
