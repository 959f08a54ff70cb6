package main

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iov-one/weave"
	"github.com/lexuandaibn123/surveyhub/client"
	"github.com/pkg/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// maxRequestSize limits the size of a submit request body.
const maxRequestSize = 64 << 10

// Relay prepares answer transactions on behalf of the form custodian. The
// custodian signature is added server side and the transaction is returned
// to the respondent, who must sign it as well before broadcasting.
type Relay struct {
	logger    log.Logger
	client    client.Client
	custodian *client.PrivateKey
}

// NewRelay returns a relay signing with the custodian key.
func NewRelay(logger log.Logger, c client.Client, custodian *client.PrivateKey) *Relay {
	return &Relay{
		logger:    logger,
		client:    c,
		custodian: custodian,
	}
}

// Routes returns the http handler serving all relay endpoints.
func (rl *Relay) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(rl.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", rl.health)
	r.Post("/api/submit-form", rl.submitForm)
	return r
}

type submitFormRequest struct {
	ID            string `json:"id"`
	Content       string `json:"content"`
	AuthorAddress string `json:"authorAddress"`
}

type submitFormResponse struct {
	Transaction string `json:"transaction"`
	ID          string `json:"id"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func (rl *Relay) submitForm(w http.ResponseWriter, r *http.Request) {
	var req submitFormRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize)).Decode(&req); err != nil {
		rl.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body", Error: err.Error()})
		return
	}
	if req.ID == "" || req.Content == "" {
		rl.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Id and content are required"})
		return
	}
	if req.AuthorAddress == "" {
		rl.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Author address is required"})
		return
	}
	author, err := weave.ParseAddress(req.AuthorAddress)
	if err != nil {
		rl.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid author address", Error: err.Error()})
		return
	}

	form, err := rl.client.GetForm(req.ID)
	if err != nil {
		rl.internalError(w, r, errors.Wrap(err, "cannot fetch form"))
		return
	}
	if form == nil {
		rl.writeJSON(w, http.StatusNotFound, errorResponse{Message: "Form not found"})
		return
	}
	custodian := rl.custodian.PublicKey().Address()
	if !form.Form.Custodian.Equals(custodian) {
		rl.writeJSON(w, http.StatusForbidden, errorResponse{Message: "Form is not held by this relay"})
		return
	}

	submissionID, err := client.NewSubmissionID()
	if err != nil {
		rl.internalError(w, r, err)
		return
	}
	tx := client.BuildSubmitTx(req.ID, author, submissionID, req.Content)
	if err := tx.GetSurveySubmitMsg().Validate(); err != nil {
		rl.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid submission", Error: err.Error()})
		return
	}

	chainID, err := rl.client.ChainID()
	if err != nil {
		rl.internalError(w, r, errors.Wrap(err, "cannot fetch chain ID"))
		return
	}
	// The sequence is queried for every request. A transaction the
	// respondent never broadcasts does not consume it.
	seq, err := client.NewNonce(rl.client, custodian).Query()
	if err != nil {
		rl.internalError(w, r, errors.Wrap(err, "cannot fetch custodian sequence"))
		return
	}
	if err := client.SignTx(tx, rl.custodian, chainID, seq); err != nil {
		rl.internalError(w, r, errors.Wrap(err, "cannot sign transaction"))
		return
	}
	raw, err := tx.Marshal()
	if err != nil {
		rl.internalError(w, r, errors.Wrap(err, "cannot serialize transaction"))
		return
	}

	rl.writeJSON(w, http.StatusOK, submitFormResponse{
		Transaction: base64.StdEncoding.EncodeToString(raw),
		ID:          submissionID,
	})
}

func (rl *Relay) health(w http.ResponseWriter, r *http.Request) {
	rl.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rl *Relay) internalError(w http.ResponseWriter, r *http.Request, err error) {
	rl.logger.Error("request failed",
		"request_id", middleware.GetReqID(r.Context()),
		"err", err)
	rl.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error", Error: err.Error()})
}

func (rl *Relay) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		rl.logger.Error("cannot encode response", "err", err)
	}
}

func (rl *Relay) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		rl.logger.Info("request",
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start))
	})
}
