package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/goldencrumb/bakerybackend/lib/mylog"
	"github.com/goldencrumb/bakerybackend/lib/mypublisher"
	"github.com/goldencrumb/bakerybackend/lib/mypubsub"
	"github.com/goldencrumb/bakerybackend/lib/myqueue"
	"github.com/goldencrumb/bakerybackend/lib/myrandom"
	"github.com/goldencrumb/bakerybackend/lib/mystore"
	"github.com/goldencrumb/bakerybackend/lib/mytime"
	"github.com/goldencrumb/bakerybackend/lib/myuuid"
	"github.com/goldencrumb/bakerybackend/services/cart"
	"github.com/goldencrumb/bakerybackend/services/checkout"
	"github.com/goldencrumb/bakerybackend/services/delivery"
	"github.com/goldencrumb/bakerybackend/services/order"
	"github.com/goldencrumb/bakerybackend/services/order/statuscontrol"
	"github.com/goldencrumb/bakerybackend/services/payment"
	"github.com/goldencrumb/bakerybackend/services/urgency"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}
	rander := myrandom.RealRandomizer{}

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	zoneStore, zoneStoreCleanup, err := mystore.New[delivery.Zone](c)
	if err != nil {
		log.Fatalf("Error creating zone store: %s", err)
	}
	defer zoneStoreCleanup()

	zoneService := delivery.NewService(zoneStore, mylog.New("delivery"))
	err = zoneService.Seed(c, delivery.DefaultZones())
	if err != nil {
		log.Fatalf("Error seeding delivery zones: %s", err)
	}
	zoneService.RegisterEndpoints(c, router)

	cartStore, cartStoreCleanup, err := mystore.New[cart.Cart](c)
	if err != nil {
		log.Fatalf("Error creating cart store: %s", err)
	}
	defer cartStoreCleanup()

	cartService := cart.NewService(cartStore, nower, mylog.New("cart"))
	cartService.RegisterEndpoints(c, router)

	orderStore, orderStoreCleanup, err := mystore.New[order.Order](c)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}
	defer orderStoreCleanup()

	orderService := order.NewService(orderStore, publisher, nower, uuider, mylog.New("order"))
	orderService.RegisterEndpoints(c, router)

	statusController := statuscontrol.New(orderService, mylog.New("statuscontrol"))
	statusController.RegisterEndpoints(c, router)

	paymentService := payment.NewService(payment.NewConfig(), nower, rander, mylog.New("payment"))

	sessionStore, sessionStoreCleanup, err := mystore.New[checkout.CheckoutSession](c)
	if err != nil {
		log.Fatalf("Error creating checkout-session store: %s", err)
	}
	defer sessionStoreCleanup()

	checkoutService := checkout.NewService(sessionStore, paymentService, cartService, zoneService, orderService, nower, mylog.New("checkout"))
	checkoutService.RegisterEndpoints(c, router)

	urgencyMonitor := urgency.NewMonitor(orderService, pubsub, nower, mylog.New("urgency"))
	err = urgencyMonitor.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error subscribing urgency monitor: %s", err)
	}

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
