package cart

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/lib/mystore"
	"github.com/goldencrumb/bakerybackend/lib/mytime"
)

func TestCartService(t *testing.T) {

	t.Run("Subtotal adds items and custom loaves", func(t *testing.T) {
		crt := Cart{
			Items: []CartItem{
				{ProductUID: "prod_croissant", UnitPriceInCents: 250, Quantity: 4},
				{ProductUID: "prod_babka", UnitPriceInCents: 1200, Quantity: 1},
			},
			CustomLoafItems: []CustomLoafItem{
				{UID: "loaf_1", PriceInCents: 1800},
			},
		}

		assert.Equal(t, 4000, crt.SubtotalInCents())
		assert.False(t, crt.IsEmpty())
	})

	t.Run("Add item creates cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, _, nower := setup(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		crt, err := sut.AddItem(ctx, "cart-1", CartItem{ProductUID: "prod_sourdough", UnitPriceInCents: 700, Quantity: 2})

		assert.NoError(t, err)
		assert.Equal(t, "cart-1", crt.UID)
		assert.Equal(t, 1400, crt.SubtotalInCents())
		assert.Equal(t, mytime.ExampleTime, crt.CreatedAt)
	})

	t.Run("Clear cart empties items but keeps cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, _, nower := setup(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime).Times(2)

		_, err := sut.AddItem(ctx, "cart-1", CartItem{ProductUID: "prod_sourdough", UnitPriceInCents: 700, Quantity: 2})
		assert.NoError(t, err)

		err = sut.ClearCart(ctx, "cart-1")
		assert.NoError(t, err)

		crt, found, err := sut.GetCart(ctx, "cart-1")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.True(t, crt.IsEmpty())
	})

	t.Run("Clear absent cart is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ctx, sut, _, _ := setup(t, ctrl)

		err := sut.ClearCart(ctx, "cart-unknown")

		assert.NoError(t, err)
	})

	t.Run("Add item over http", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, _, router, nower := setup(t, ctrl)
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		request, err := http.NewRequest(http.MethodPost, "/api/cart/cart-9/item",
			strings.NewReader(`{"ProductUID":"prod_rye","Name":"Rye loaf","UnitPriceInCents":650,"Quantity":1}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Rye loaf")
	})

	t.Run("Add item with bad quantity over http", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, _, router, _ := setup(t, ctrl)

		request, err := http.NewRequest(http.MethodPost, "/api/cart/cart-9/item",
			strings.NewReader(`{"ProductUID":"prod_rye","Quantity":0}`))
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 400, response.Code)
	})

	t.Run("Get absent cart over http", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, _, router, _ := setup(t, ctrl)

		request, err := http.NewRequest(http.MethodGet, "/api/cart/cart-9", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, 404, response.Code)
	})
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *service, *mux.Router, *mytime.MockNower) {
	c := context.TODO()
	cartStore, _, _ := mystore.New[Cart](c)
	nower := mytime.NewMockNower(ctrl)

	sut := NewService(cartStore, nower, mylog.New("cart"))
	router := mux.NewRouter()
	sut.RegisterEndpoints(c, router)

	return c, sut, router, nower
}
