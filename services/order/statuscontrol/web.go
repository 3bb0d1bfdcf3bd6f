package statuscontrol

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goldencrumb/bakerybackend/lib/mycontext"
	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/myhttp"
	"github.com/goldencrumb/bakerybackend/services/order"
)

type effectiveStatusResponse struct {
	OrderUID        string
	StoredStatus    order.OrderStatus
	EffectiveStatus order.OrderStatus
	Label           string
	Color           string
}

func (ct *Controller) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/order/{orderUID}/status/{newStatus}", ct.moveOrderPage()).Methods("PUT")
	router.HandleFunc("/api/order/{orderUID}/status", ct.effectiveStatusPage()).Methods("GET")
}

func (ct *Controller) moveOrderPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(ct.logger)

		orderUID := mux.Vars(r)["orderUID"]
		newStatus := order.OrderStatus(mux.Vars(r)["newStatus"])

		if !newStatus.IsValid() {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("unknown status %s", newStatus)))
			return
		}

		err := ct.MoveOrder(c, orderUID, newStatus)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("Order %s is now %s", orderUID, newStatus.Label()),
		})
	}
}

func (ct *Controller) effectiveStatusPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(ct.logger)

		orderUID := mux.Vars(r)["orderUID"]

		existing, found, err := ct.orders.GetOrder(c, orderUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("order with uid %s not found", orderUID)))
			return
		}

		effective := ct.GetEffectiveStatus(orderUID, existing.Status)

		errorWriter.Write(c, w, http.StatusOK, effectiveStatusResponse{
			OrderUID:        orderUID,
			StoredStatus:    existing.Status,
			EffectiveStatus: effective,
			Label:           effective.Label(),
			Color:           effective.Color(),
		})
	}
}
