package conceptdesign

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"Atelier/internal/catalog"
	"Atelier/internal/fault"
	"Atelier/internal/httpx"

	"github.com/gorilla/mux"
)

type Handler struct {
	Service *Service
}

type forwardFunc func(ctx context.Context, inputs map[string]any, cred *Credential) (json.RawMessage, error)

// request splits a tool call into its inputs and optional credential. Both
// {inputs, credential} envelopes and flat bodies are accepted.
func request(r *http.Request) (map[string]any, *Credential, error) {
	body, err := httpx.ReadObject(r)
	if err != nil {
		return nil, nil, err
	}
	inputs, ok := body["inputs"].(map[string]any)
	if !ok {
		inputs = body
	}
	delete(inputs, "__advancedConfig")

	var cred *Credential
	if raw, ok := body["credential"].(map[string]any); ok {
		cred = &Credential{}
		cred.APIKey, _ = raw["api_key"].(string)
		cred.EncryptedData, _ = raw["encryptedData"].(string)
		cred.Type, _ = raw["type"].(string)
	}
	return inputs, cred, nil
}

func (h *Handler) forward(name string, fn forwardFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inputs, cred, err := request(r)
		if err != nil {
			httpx.WriteFault(w, err)
			return
		}
		out, err := fn(r.Context(), inputs, cred)
		if err != nil {
			log.Printf("[concept-design] %s failed: %v", name, err)
			httpx.WriteFault(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(out)
	}
}

type imageResponse struct {
	Status    string  `json:"status"`
	Message   string  `json:"message"`
	ImageURL  *string `json:"imageUrl"`
	ImageName string  `json:"imageName,omitempty"`
}

// GetImage answers 200 whether or not an image was found; status tells which.
func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	inputs, _, err := request(r)
	if err != nil {
		httpx.WriteFault(w, err)
		return
	}
	q := NewImageQuery(inputs)
	img, err := h.Service.FindImage(r.Context(), q)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, imageResponse{
			Status:    "success",
			Message:   "Fetched " + q.ImageType + " image",
			ImageURL:  &img.URL,
			ImageName: img.Name,
		})
	case errors.Is(err, fault.NotFound):
		httpx.WriteJSON(w, http.StatusOK, imageResponse{
			Status:  "error",
			Message: "No " + q.ImageType + " image found. Tried: " + strings.Join(q.Candidates(), ", "),
		})
	default:
		log.Printf("[concept-design] get-image failed: %v", err)
		httpx.WriteFault(w, err)
	}
}

// Result streams one backend result file through the gateway.
func (h *Handler) Result(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["imageName"]
	data, ct, err := h.Service.Fetch(r.Context(), name)
	if err != nil {
		log.Printf("[concept-design] result %s: %v", name, err)
		httpx.WriteJSON(w, http.StatusNotFound, map[string]string{
			"error":   "Image not found",
			"message": "Could not fetch image: " + name,
			"details": err.Error(),
		})
		return
	}
	if ct == "" {
		ct = "image/jpeg"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) Register(router *mux.Router, reg *catalog.Registry) {
	router.HandleFunc("/concept-design/model", h.forward("model", h.Service.Model)).Methods("POST")
	router.HandleFunc("/concept-design/transform", h.forward("transform", h.Service.Transform)).Methods("POST")
	router.HandleFunc("/concept-design/analyze", h.forward("analyze", h.Service.Analyze)).Methods("POST")
	router.HandleFunc("/concept-design/get-image", h.GetImage).Methods("POST")
	router.HandleFunc("/concept-design/results/{imageName}", h.Result).Methods("GET")
	if reg != nil {
		reg.Register(Tools()...)
	}
}
