package api

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"legalyze/internal/assistant"
	"legalyze/internal/classify"
	"legalyze/internal/config"
	"legalyze/internal/conversation"
	"legalyze/internal/extract"
	"legalyze/internal/profile"
	"legalyze/internal/providers"
	"legalyze/internal/storage"
	"legalyze/internal/util"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Server struct {
	cfg       config.Config
	logger    zerolog.Logger
	db        *storage.DB
	profiles  *profile.Service
	convo     conversation.Log
	assistant *assistant.Assistant
	web       *extract.WebExtractor
	emotion   classify.Classifier
}

// NewServer wires the whole process: store (Postgres or in-memory), model
// providers, extractors and the turn pipeline.
func NewServer(cfg config.Config, logger zerolog.Logger) (*Server, error) {
	var (
		db           *storage.DB
		profileStore profile.Store
		convo        conversation.Log
	)
	switch strings.ToLower(cfg.Store) {
	case "memory":
		profileStore = storage.NewMemoryProfileStore()
		convo = storage.NewMemoryConversationLog()
		logger.Warn().Msg("using in-memory store; data will not survive a restart")
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		var err error
		db, err = storage.NewDB(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := db.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		profileStore = storage.NewProfileRepo(db)
		convo = storage.NewConversationRepo(db)
	}

	pm, err := providers.NewManager(cfg)
	if err != nil {
		return nil, err
	}
	llm, ref := pm.First()
	logger.Info().Str("provider", ref.Name).Msg("model provider selected")

	profiles := profile.NewService(profileStore)
	timeout := time.Duration(cfg.RequestTimeoutSecs) * time.Second
	asst := assistant.New(llm, profiles, convo, assistant.Options{
		HistoryTurns:   cfg.HistoryTurns,
		ContextCap:     cfg.ContextBudgetChars,
		RequestTimeout: timeout,
	}, logger)

	var emotion classify.Classifier
	if cfg.EmotionClassifierURL != "" {
		emotion = classify.NewHTTPClassifier(cfg.EmotionClassifierURL, "")
	}

	return &Server{
		cfg:       cfg,
		logger:    logger,
		db:        db,
		profiles:  profiles,
		convo:     convo,
		assistant: asst,
		web:       extract.NewWebExtractor(timeout),
		emotion:   emotion,
	}, nil
}

func (s *Server) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.HandleFunc("POST /session", s.handleNewSession)
	mux.HandleFunc("GET /profile/{id}", s.handleGetProfile)
	mux.HandleFunc("POST /profile/{id}", s.handleUpdateProfile)
	mux.HandleFunc("POST /profile/{id}/cases", s.handleAddCase)
	mux.HandleFunc("POST /profile/{id}/digilocker", s.handleConnectDigiLocker)
	mux.HandleFunc("POST /chat", s.handleChat)
	mux.HandleFunc("GET /history/{id}", s.handleHistory)
	mux.HandleFunc("GET /quick-actions", s.handleQuickActions)
	mux.HandleFunc("GET /{$}", s.handleIndex)
	return withCORS(s.logRequests(mux))
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// handleNewSession mints a session identifier and eagerly creates the profile,
// so every later call sees the same record.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	userID := uuid.NewString()
	p, err := s.profiles.LoadOrCreate(r.Context(), userID)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user_id": userID, "profile": p})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.LoadOrCreate(r.Context(), r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	delete(fields, "user_id") // immutable once created
	p, err := s.profiles.Update(r.Context(), r.PathValue("id"), fields)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleAddCase(w http.ResponseWriter, r *http.Request) {
	var info profile.CaseInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	if strings.TrimSpace(info.Description) == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("description is required"))
		return
	}
	c, err := s.profiles.AddCase(r.Context(), r.PathValue("id"), info)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleConnectDigiLocker(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.ConnectDigiLocker(r.Context(), r.PathValue("id")); err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"digilocker_connected": true})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.convo.History(r.Context(), r.PathValue("id"))
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

type chatRequest struct {
	UserID     string `json:"user_id"`
	Message    string `json:"message"`
	WebsiteURL string `json:"website_url,omitempty"`
}

type chatResponse struct {
	Reply       string `json:"reply"`
	Lang        string `json:"lang"`
	Emotion     string `json:"emotion"`
	RiskScore   int    `json:"risk_score"`
	NeedsLawyer bool   `json:"needs_lawyer"`
}

// handleChat runs one full turn. JSON for plain questions; multipart when a
// PDF rides along. This is the only place where typed extraction and model
// errors become user-facing display text.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	req, pdfText, err := s.parseChatRequest(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	if req.UserID == "" || strings.TrimSpace(req.Message) == "" {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("user_id and message are required"))
		return
	}

	var extra strings.Builder
	if pdfText != "" {
		extra.WriteString("[PDF Content]\n")
		extra.WriteString(pdfText)
	}
	if req.WebsiteURL != "" {
		text, err := s.web.Extract(r.Context(), req.WebsiteURL, s.cfg.MaxExtractChars)
		if err != nil {
			s.logger.Warn().Str("url", req.WebsiteURL).Err(err).Msg("website extraction failed")
			text = extractionDisplayText(err)
		}
		if extra.Len() > 0 {
			extra.WriteString("\n")
		}
		extra.WriteString("[Website Content]\n")
		extra.WriteString(text)
	}

	res, err := s.assistant.Respond(r.Context(), assistant.TurnInput{
		UserID: req.UserID,
		Query:  req.Message,
		Extra:  extra.String(),
	})
	reply := res.Reply
	if err != nil {
		if res.ErrKind == "" {
			// Storage failures abort the turn instead of masquerading as a reply.
			writeErr(w, http.StatusInternalServerError, err)
			return
		}
		reply = modelDisplayText(err)
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Reply:       reply,
		Lang:        res.Lang,
		Emotion:     classify.Emotion(r.Context(), s.emotion, req.Message),
		RiskScore:   res.RiskScore,
		NeedsLawyer: res.NeedsLawyer,
	})
}

// parseChatRequest accepts either a JSON body or a multipart form carrying an
// optional "pdf" file. On extraction failure the returned pdfText is already
// display text, per the never-crash-the-turn policy.
func (s *Server) parseChatRequest(r *http.Request) (chatRequest, string, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct != "multipart/form-data" {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return chatRequest{}, "", fmt.Errorf("invalid json: %w", err)
		}
		return req, "", nil
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return chatRequest{}, "", fmt.Errorf("parse multipart form: %w", err)
	}
	req := chatRequest{
		UserID:     r.FormValue("user_id"),
		Message:    r.FormValue("message"),
		WebsiteURL: r.FormValue("website_url"),
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		// No attachment is fine.
		return req, "", nil
	}
	defer file.Close()

	text, exErr := extract.FromPDF(file, header.Size, s.cfg.MaxExtractChars)
	if exErr != nil {
		s.logger.Warn().Str("filename", header.Filename).Err(exErr).Msg("pdf extraction failed")
		return req, extractionDisplayText(exErr), nil
	}

	// Record the upload on the profile so later turns can reference it.
	if req.UserID != "" {
		if _, err := file.Seek(0, 0); err == nil {
			if sum, err := util.SHA256HexFromReader(file); err == nil {
				entry := fmt.Sprintf("%s sha256:%s", header.Filename, sum[:12])
				if err := s.profiles.AddDocument(r.Context(), req.UserID, entry); err != nil {
					s.logger.Warn().Err(err).Msg("failed to record document on profile")
				}
			}
		}
	}
	return req, text, nil
}

type quickAction struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

func (s *Server) handleQuickActions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"actions": []quickAction{
		{Label: "Legal Notice", Prompt: "I need help drafting a legal notice"},
		{Label: "FIR Help", Prompt: "I need to file an FIR"},
		{Label: "Property Issue", Prompt: "I have a property dispute"},
		{Label: "Need Lawyer?", Prompt: "Do I need a lawyer for my situation?"},
	}})
}
