package mock

import "github.com/manara-web/internal/domain"

// Dataset returns a fresh copy of the bundled mosques.
func Dataset() []domain.Mosque {
	return []domain.Mosque{
		{
			ID:             "1",
			Status:         "active",
			Name:           "جامع الأموي",
			Description:    "مسجد تاريخي عريق يقع في قلب دمشق القديمة، يعود تاريخه إلى العصر الأموي",
			Longitude:      36.3069,
			Latitude:       33.5138,
			Capacity:       3000,
			Address:        "دمشق القديمة، سوريا",
			DonationsCount: 5,
			City:           "دمشق",
			Size:           "كبير",
			EstablishYear:  715,
			Donations: []domain.Donation{
				{ID: "d1", Title: "ترميم القبة الذهبية", Description: "مشروع ترميم القبة الذهبية للمسجد الأموي", IsVerified: true, CurrentAmount: 150000, TotalAmount: 500000},
				{ID: "d2", Title: "تطوير نظام الإضاءة", Description: "تحديث نظام الإضاءة الداخلي للمسجد", IsVerified: true, CurrentAmount: 75000, TotalAmount: 120000},
			},
		},
		{
			ID:             "2",
			Status:         "active",
			Name:           "جامع خالد بن الوليد",
			Description:    "مسجد تاريخي في مدينة حمص، سمي على اسم الصحابي الجليل خالد بن الوليد",
			Longitude:      36.7234,
			Latitude:       34.7268,
			Capacity:       1500,
			Address:        "حمص، سوريا",
			DonationsCount: 3,
			City:           "حمص",
			Size:           "متوسط",
			EstablishYear:  1908,
			Donations: []domain.Donation{
				{ID: "d3", Title: "بناء مدرسة قرآنية", Description: "إنشاء مدرسة لتعليم القرآن الكريم والعلوم الإسلامية", IsVerified: true, CurrentAmount: 25000, TotalAmount: 80000},
			},
		},
		{
			ID:             "3",
			Status:         "active",
			Name:           "جامع النوري",
			Description:    "مسجد النوري الكبير في حلب، من أقدم المساجد في المدينة",
			Longitude:      37.1611,
			Latitude:       36.2021,
			Capacity:       2000,
			Address:        "حلب، سوريا",
			DonationsCount: 4,
			City:           "حلب",
			Size:           "كبير",
			EstablishYear:  1172,
			Donations: []domain.Donation{
				{ID: "d4", Title: "إعادة بناء المئذنة", Description: "إعادة بناء المئذنة التاريخية للمسجد", IsVerified: true, CurrentAmount: 200000, TotalAmount: 600000},
				{ID: "d5", Title: "ترميم السقف", Description: "ترميم السقف الخشبي للمسجد", IsVerified: false, CurrentAmount: 45000, TotalAmount: 150000},
			},
		},
		{
			ID:             "4",
			Status:         "active",
			Name:           "جامع التوبة",
			Description:    "مسجد التوبة في مدينة اللاذقية، من المساجد المميزة في المنطقة",
			Longitude:      35.7746,
			Latitude:       35.5177,
			Capacity:       800,
			Address:        "اللاذقية، سوريا",
			DonationsCount: 2,
			City:           "اللاذقية",
			Size:           "صغير",
			EstablishYear:  1950,
			Donations: []domain.Donation{
				{ID: "d6", Title: "توسعة المسجد", Description: "توسعة المسجد لاستيعاب المزيد من المصلين", IsVerified: true, CurrentAmount: 60000, TotalAmount: 200000},
			},
		},
		{
			ID:             "5",
			Status:         "active",
			Name:           "جامع الحسن",
			Description:    "مسجد الحسن في مدينة درعا، من المساجد التاريخية في المنطقة",
			Longitude:      36.1033,
			Latitude:       32.6189,
			Capacity:       1200,
			Address:        "درعا، سوريا",
			DonationsCount: 3,
			City:           "درعا",
			Size:           "متوسط",
			EstablishYear:  1200,
			Donations: []domain.Donation{
				{ID: "d7", Title: "ترميم الجدران", Description: "ترميم الجدران الخارجية للمسجد", IsVerified: true, CurrentAmount: 30000, TotalAmount: 100000},
				{ID: "d8", Title: "تطوير الحمامات", Description: "تطوير وتحديث مرافق الوضوء", IsVerified: false, CurrentAmount: 15000, TotalAmount: 50000},
			},
		},
	}
}
