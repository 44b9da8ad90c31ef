package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	json "github.com/json-iterator/go"
	paymentGateway "github.com/pix-donation-gateway/internal/application/payment/gateway"
)

const maxBodyBytes = 1 << 20

func Setup(addr string, gw *paymentGateway.Gateway) *http.Server {
	fmt.Println("starting server running on " + addr)
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(gw),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// NewRouter also answers on the Netlify function path that existing clients call.
func NewRouter(gw *paymentGateway.Gateway) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", healthHandler()).Methods(http.MethodGet)
	r.HandleFunc("/create-pix", createPixHandler(gw))
	r.HandleFunc("/.netlify/functions/create-pix", createPixHandler(gw))
	return r
}

func createPixHandler(gw *paymentGateway.Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		if r.Method == http.MethodOptions {
			writeResponse(w, gw.Handle(r.Context(), paymentGateway.Request{Method: r.Method}))
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeResponse(w, gw.Fail(r.Context(), fmt.Errorf("failed to read request body: %w", err)))
			return
		}

		writeResponse(w, gw.Handle(r.Context(), paymentGateway.Request{
			Method: r.Method,
			Body:   body,
		}))
	}
}

func healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func writeResponse(w http.ResponseWriter, res paymentGateway.Response) {
	for k, v := range res.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(res.StatusCode)
	w.Write(res.Body)
}
