package orders

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangeeth-21/velkani-admin/internal/receipt"
	"github.com/sangeeth-21/velkani-admin/internal/upstream"
)

const ordersPayload = `{"status":"success","data":[{
	"id":"ord-12345678-abc","uiduser":"u-1","date":"2026-09-01","time":"14:32:05",
	"amount":"125.50",
	"items":[{"id":"1","productname":"Toor Dal","weight":"1kg","amount":"80"},
	         {"id":"2","productname":"Jaggery","weight":"500g","amount":"45.5"}]
}]}`

const usersPayload = `{"status":"success","data":[
	{"sno":"1","uid":"u-1","name":"Priya","number":"90000 11111"}
]}`

func newOrdersRouter(t *testing.T, users string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("action") {
		case "get_orders":
			w.Write([]byte(ordersPayload))
		case "get_users":
			w.Write([]byte(users))
		default:
			w.Write([]byte(`{"status":"error","message":"unknown action"}`))
		}
	}))
	t.Cleanup(srv.Close)

	api := upstream.New(srv.URL, 5*time.Second)
	h := NewHandler(api, receipt.NewFormatter(receipt.StoreInfo{Name: "Sri Velkani Store"}))

	r := gin.New()
	r.GET("/orders", h.List)
	r.GET("/orders/:id/receipt", h.Receipt)
	r.GET("/orders/:id/receipt/download", h.ReceiptDownload)
	return r
}

func TestListIncludesRevenue(t *testing.T) {
	r := newOrdersRouter(t, usersPayload)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
	assert.Contains(t, w.Body.String(), `"revenue":125.5`)
}

func TestReceiptRendersUser(t *testing.T) {
	r := newOrdersRouter(t, usersPayload)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/ord-12345678-abc/receipt", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, "Customer: Priya")
	assert.Contains(t, body, "Toor Dal")
	assert.Contains(t, body, "window.print")
}

func TestReceiptFallsBackWithoutUser(t *testing.T) {
	r := newOrdersRouter(t, `{"status":"success","data":[]}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/ord-12345678-abc/receipt", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Walk-in Customer")
}

func TestReceiptDownloadSetsAttachment(t *testing.T) {
	r := newOrdersRouter(t, usersPayload)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/ord-12345678-abc/receipt/download", nil))

	require.Equal(t, http.StatusOK, w.Code)
	disposition := w.Header().Get("Content-Disposition")
	assert.Contains(t, disposition, "attachment")
	assert.Contains(t, disposition, "receipt-ord-1234-")
	assert.NotContains(t, w.Body.String(), "window.print")
}

func TestReceiptUnknownOrder(t *testing.T) {
	r := newOrdersRouter(t, usersPayload)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/nope/receipt", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
