package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/imrishuroy/go-serviceorder-api/internal/orders"
)

func newTestRouter(d *Dispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, d)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutes_Health(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	w := serve(newTestRouter(d), http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRoutes_CreateForwardsPathAndQuery(t *testing.T) {
	d, store, notifier := newTestDispatcher(t)

	store.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o orders.StoredOrder) (orders.StoredOrder, error) {
			assert.Equal(t, customerID, o.CustomerID)
			require.NotNil(t, o.LocationID)
			assert.Equal(t, locationID, *o.LocationID)
			return o, nil
		})
	notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	body := `{"unit_id":"` + unitID + `","action_id":"` + actionID + `"}`
	w := serve(newTestRouter(d), http.MethodPost, "/customers/customer123/service-orders?locationId=location456", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"order_id":"`+mintedID.String()+`"`)
}

func TestRoutes_DeleteHasNoBody(t *testing.T) {
	d, store, notifier := newTestDispatcher(t)

	store.EXPECT().MarkDeleted(gomock.Any(), orderID, customerID).Return(true, nil)
	notifier.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	w := serve(newTestRouter(d), http.MethodDelete, "/customers/customer123/service-orders/"+orderID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRoutes_OptionsAndUnsupported(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	r := newTestRouter(d)

	w := serve(r, http.MethodOptions, "/customers/customer123/service-orders", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "OPTIONS,POST,GET,PUT,DELETE", w.Header().Get("Access-Control-Allow-Methods"))

	w = serve(r, http.MethodPatch, "/customers/customer123/service-orders/"+orderID, `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
}

func TestRoutes_GetList(t *testing.T) {
	d, store, _ := newTestDispatcher(t)
	store.EXPECT().QueryByCustomer(gomock.Any(), customerID, "").Return(nil, nil)

	w := serve(newTestRouter(d), http.MethodGet, "/customers/customer123/service-orders", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestRoutes_Metrics(t *testing.T) {
	d, _, _ := newTestDispatcher(t)
	r := newTestRouter(d)

	serve(r, http.MethodOptions, "/customers/customer123/service-orders", "")
	w := serve(r, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "service_orders_requests_total")
}
