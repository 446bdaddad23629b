package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Govind-619/ShopLink/config"
	"github.com/Govind-619/ShopLink/controllers"
	"github.com/Govind-619/ShopLink/models"
	"github.com/Govind-619/ShopLink/routes"
	"github.com/Govind-619/ShopLink/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	config.AppConfig = &config.Config{
		DBPath:          filepath.Join(dir, "test.db"),
		UploadDir:       filepath.Join(dir, "uploads"),
		ShopDataDir:     filepath.Join(dir, "shop_data"),
		CredentialsFile: filepath.Join(dir, "creds.json"),
		DefaultBanner:   "static/default.jpg",
		DefaultPassword: "default123",
		SessionSecret:   "test-secret",
		BaseURL:         "http://localhost:8080",
	}
	config.Location = time.Local

	db, err := gorm.Open(sqlite.Open(config.AppConfig.DBPath), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Offer{}))
	config.DB = db

	controllers.Credentials = utils.NewCredentialStore(
		config.AppConfig.CredentialsFile, config.AppConfig.DefaultPassword)

	return routes.SetupRouter()
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp struct {
		Status  string                 `json:"status"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func login(t *testing.T, router *gin.Engine, shopName string) []*http.Cookie {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/login",
		map[string]string{"shop_name": shopName, "password": "anything"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func uploadOffer(t *testing.T, router *gin.Engine, shopName, startTime, endTime string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("offer_image", "banner.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("start_time", startTime))
	require.NoError(t, writer.WriteField("end_time", endTime))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/"+shopName+"/admin/offers", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginAutoRegistersUnknownShop(t *testing.T) {
	router := setupServer(t)

	w := doJSON(t, router, http.MethodPost, "/login",
		map[string]string{"shop_name": "Acme", "password": "whatever"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "acme", data["shop_name"])
	assert.Equal(t, true, data["registered"])

	// Second login works only with the default password
	w = doJSON(t, router, http.MethodPost, "/login",
		map[string]string{"shop_name": "acme", "password": "wrong"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/login",
		map[string]string{"shop_name": "acme", "password": "default123"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminRoutesRequireLogin(t *testing.T) {
	router := setupServer(t)

	w := uploadOffer(t, router, "acme", "08:00", "10:00", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/acme/dashboard", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A session for one shop does not unlock another
	cookies := login(t, router, "acme")
	w = doJSON(t, router, http.MethodGet, "/other/dashboard", nil, cookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOfferUploadResolveSweepFlow(t *testing.T) {
	router := setupServer(t)
	cookies := login(t, router, "acme")

	// Equal start and end makes the offer a 24-hour window from today's
	// midnight, so it is active whenever this test runs.
	w := uploadOffer(t, router, "acme", "00:00", "00:00", cookies)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Offer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.FileExists(t, created.Data.ImagePath)

	// The public page shows the uploaded banner
	w = doJSON(t, router, http.MethodGet, "/acme", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, created.Data.ImagePath, data["banner_image"])

	// Plant an offer whose window lapsed yesterday
	expiredFile := filepath.Join(config.AppConfig.UploadDir, "expired.jpg")
	require.NoError(t, os.WriteFile(expiredFile, []byte("old"), 0644))
	expired := models.Offer{
		ShopName:    "acme",
		ImagePath:   expiredFile,
		StartTime:   "08:00",
		EndTime:     "10:00",
		CreatedDate: utils.Now().AddDate(0, 0, -1).Format("2006-01-02"),
	}
	require.NoError(t, config.DB.Create(&expired).Error)

	w = doJSON(t, router, http.MethodPost, "/admin/maintenance/sweep", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, float64(1), data["deleted"])
	assert.NoFileExists(t, expiredFile)

	// The active banner survived the sweep
	w = doJSON(t, router, http.MethodGet, "/acme", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, created.Data.ImagePath, data["banner_image"])
}

func TestResolverFallsBackToDefault(t *testing.T) {
	router := setupServer(t)

	w := doJSON(t, router, http.MethodGet, "/acme", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "static/default.jpg", data["banner_image"])
}

func TestUpdateLinks(t *testing.T) {
	router := setupServer(t)
	cookies := login(t, router, "acme")

	w := doJSON(t, router, http.MethodPut, "/acme/admin/links",
		map[string]string{"facebook": "https://facebook.com/acme", "header_text": "Big sale!"}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/acme", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	links, ok := data["links"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://facebook.com/acme", links["facebook"])
	assert.Equal(t, "Big sale!", links["header_text"])
	// Untouched fields keep their defaults
	assert.Equal(t, "Acme", links["display_name"])
}

func TestShopQRCode(t *testing.T) {
	router := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/acme/qr", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestShopQRPosterWithCorruptLinksFile(t *testing.T) {
	router := setupServer(t)

	// A damaged links file must not blank out the poster; it falls back
	// to the default document.
	require.NoError(t, os.MkdirAll(config.AppConfig.ShopDataDir, 0755))
	path := filepath.Join(config.AppConfig.ShopDataDir, "acme.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	req := httptest.NewRequest(http.MethodGet, "/acme/qr/poster", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}
