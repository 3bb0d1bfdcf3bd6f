package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goldencrumb/bakerybackend/lib/mycontext"
	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/myhttp"
	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/lib/mystore"
	"github.com/goldencrumb/bakerybackend/lib/mytime"
)

type service struct {
	cartStore mystore.Store[Cart]
	nower     mytime.Nower
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(cartStore mystore.Store[Cart], nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		cartStore: cartStore,
		nower:     nower,
		logger:    logger,
	}
}

func (s *service) GetCart(c context.Context, cartUID string) (Cart, bool, error) {
	return s.cartStore.Get(c, cartUID)
}

// AddItem appends an item to the cart, creating the cart when it does not exist yet.
func (s *service) AddItem(c context.Context, cartUID string, item CartItem) (Cart, error) {
	return s.modifyCart(c, cartUID, func(crt *Cart) {
		crt.Items = append(crt.Items, item)
	})
}

func (s *service) AddCustomLoaf(c context.Context, cartUID string, loaf CustomLoafItem) (Cart, error) {
	return s.modifyCart(c, cartUID, func(crt *Cart) {
		crt.CustomLoafItems = append(crt.CustomLoafItems, loaf)
	})
}

// ClearCart empties the cart after a completed checkout. Clearing a cart that
// does not exist is not an error.
func (s *service) ClearCart(c context.Context, cartUID string) error {
	return s.cartStore.RunInTransaction(c, func(c context.Context) error {
		crt, found, err := s.cartStore.Get(c, cartUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if !found {
			return nil
		}

		now := s.nower.Now()
		crt.Items = nil
		crt.CustomLoafItems = nil
		crt.LastModified = &now

		err = s.cartStore.Put(c, cartUID, crt)
		if err != nil {
			return myerrors.NewInternalError(err)
		}

		s.logger.Log(c, cartUID, mylog.SeverityInfo, "Cleared cart %s", cartUID)

		return nil
	})
}

func (s *service) modifyCart(c context.Context, cartUID string, modify func(crt *Cart)) (Cart, error) {
	var crt Cart
	err := s.cartStore.RunInTransaction(c, func(c context.Context) error {
		var found bool
		var err error
		crt, found, err = s.cartStore.Get(c, cartUID)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		now := s.nower.Now()
		if !found {
			crt = Cart{
				UID:       cartUID,
				CreatedAt: now,
			}
		}

		modify(&crt)
		crt.LastModified = &now

		err = s.cartStore.Put(c, cartUID, crt)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return Cart{}, err
	}

	return crt, nil
}

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/cart/{cartUID}", s.getCartPage()).Methods("GET")
	router.HandleFunc("/api/cart/{cartUID}/item", s.addItemPage()).Methods("POST")
	router.HandleFunc("/api/cart/{cartUID}", s.clearCartPage()).Methods("DELETE")
}

func (s *service) getCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		crt, found, err := s.cartStore.Get(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("cart with uid %s not found", cartUID)))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, crt)
	}
}

func (s *service) addItemPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		item := CartItem{}
		err := json.NewDecoder(r.Body).Decode(&item)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error parsing item: %s", err)))
			return
		}
		if item.Quantity <= 0 {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("invalid quantity %d", item.Quantity))
			return
		}

		crt, err := s.AddItem(c, cartUID, item)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, crt)
	}
}

func (s *service) clearCartPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		cartUID := mux.Vars(r)["cartUID"]

		err := s.ClearCart(c, cartUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.EmptyResponse{})
	}
}
