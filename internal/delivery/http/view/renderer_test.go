package view

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manara-web/internal/domain"
	"github.com/manara-web/internal/usecase/dto"
	"github.com/manara-web/web"
)

func render(t *testing.T, page string, data Page) (int, string) {
	t.Helper()
	r, err := NewRenderer(web.FS)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return r.Render(c, fiber.StatusOK, page, data)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRenderer_Home(t *testing.T) {
	t.Run("cards", func(t *testing.T) {
		status, body := render(t, PageHome, Page{Title: "منارة", Body: dto.HomePage{
			Cities:   dto.NewCityOptions(domain.MosqueFilter{}),
			ViewMode: "list",
			Cards:    []dto.MosqueCard{{ID: "1", Name: "جامع الأموي", URL: "/mosque/1", OpenDonations: 5}},
		}})
		assert.Equal(t, fiber.StatusOK, status)
		assert.Contains(t, body, `dir="rtl"`)
		assert.Contains(t, body, "جامع الأموي")
		assert.Contains(t, body, `href="/mosque/1"`)
		assert.Contains(t, body, "التبرعات المفتوحة: 5")
		assert.NotContains(t, body, "مسح الفلاتر")
		assert.NotContains(t, body, "leaflet.js")
	})

	t.Run("error replaces the list", func(t *testing.T) {
		_, body := render(t, PageHome, Page{Title: "منارة", Body: dto.HomePage{
			ViewMode:   "list",
			HasFilters: true,
			Error:      "فشل في تحميل بيانات المساجد",
		}})
		assert.Equal(t, 1, strings.Count(body, `role="alert"`))
		assert.Contains(t, body, "مسح الفلاتر")
		assert.NotContains(t, body, "عرض التفاصيل")
	})

	t.Run("map view loads leaflet and shows the selection", func(t *testing.T) {
		_, body := render(t, PageHome, Page{Title: "منارة", Body: dto.HomePage{
			ViewMode: "map",
			Cards:    []dto.MosqueCard{{ID: "2", Name: "جامع خالد بن الوليد"}},
			Selected: &dto.MosqueCard{ID: "2", Name: "جامع خالد بن الوليد", URL: "/mosque/2"},
		}})
		assert.Contains(t, body, `id="mosque-map"`)
		assert.Contains(t, body, "/static/map.js")
		assert.Contains(t, body, "/map/selection/dismiss")
	})
}

func TestRenderer_Mosque(t *testing.T) {
	detail := dto.NewMosqueDetail(domain.Mosque{
		ID:   "1",
		Name: "جامع الأموي",
		Donations: []domain.Donation{
			{ID: "d1", Title: "ترميم القبة الذهبية", IsVerified: true, CurrentAmount: 150000, TotalAmount: 500000},
		},
	})
	_, body := render(t, PageMosque, Page{Title: detail.Name, Body: detail})

	assert.Contains(t, body, "ترميم القبة الذهبية")
	assert.Contains(t, body, "30.0%")
	assert.Contains(t, body, "150,000 ل.س")
	assert.Contains(t, body, "width: 30.0%")
	assert.Contains(t, body, "موثق")
	assert.NotContains(t, body, "لا توجد مشاريع تبرعات حالياً")
}

func TestRenderer_Error(t *testing.T) {
	_, body := render(t, PageError, Page{Title: "خطأ", Body: dto.ErrorPage{Title: "المسجد غير موجود"}})
	assert.Contains(t, body, "المسجد غير موجود")
	assert.Contains(t, body, "العودة للصفحة الرئيسية")
	assert.NotContains(t, body, "إعادة المحاولة")
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer(web.FS)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return r.Render(c, fiber.StatusOK, "nope.html", Page{})
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
