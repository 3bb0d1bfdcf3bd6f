package delivery

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goldencrumb/bakerybackend/lib/mycontext"
	"github.com/goldencrumb/bakerybackend/lib/myerrors"
	"github.com/goldencrumb/bakerybackend/lib/myhttp"
	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/lib/mystore"
)

type service struct {
	zoneStore mystore.Store[Zone]
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(zoneStore mystore.Store[Zone], logger mylog.Logger) *service {
	return &service{
		zoneStore: zoneStore,
		logger:    logger,
	}
}

// Seed loads the fixed zone table. Existing entries are overwritten.
func (s *service) Seed(c context.Context, zones []Zone) error {
	for _, zone := range zones {
		err := s.zoneStore.Put(c, zone.UID, zone)
		if err != nil {
			return fmt.Errorf("error seeding zone %s: %s", zone.UID, err)
		}
	}
	return nil
}

func (s *service) GetZone(c context.Context, zoneUID string) (Zone, bool, error) {
	return s.zoneStore.Get(c, zoneUID)
}

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/api/zone", s.listZonesPage()).Methods("GET")
	router.HandleFunc("/api/zone/{zoneUID}", s.getZonePage()).Methods("GET")
}

func (s *service) listZonesPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		zones, err := s.zoneStore.List(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, zones)
	}
}

func (s *service) getZonePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		zoneUID := mux.Vars(r)["zoneUID"]

		zone, found, err := s.zoneStore.Get(c, zoneUID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
		if !found {
			errorWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("zone with uid %s not found", zoneUID)))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, zone)
	}
}
