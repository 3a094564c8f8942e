package assistant

import (
	"context"
	"fmt"
	"time"

	"legalyze/internal/classify"
	"legalyze/internal/conversation"
	"legalyze/internal/models"
	"legalyze/internal/profile"
	"legalyze/internal/providers"

	"github.com/rs/zerolog"
)

// Options bound the per-turn work.
type Options struct {
	HistoryTurns   int
	ContextCap     int
	RequestTimeout time.Duration
}

// Assistant runs one chat turn end to end: load profile, classify, compose
// the request, dispatch to the model service, and record both sides of the
// exchange in the conversation log.
type Assistant struct {
	provider providers.LLMProvider
	profiles *profile.Service
	log      conversation.Log
	opts     Options
	logger   zerolog.Logger
}

func New(p providers.LLMProvider, profiles *profile.Service, log conversation.Log, opts Options, logger zerolog.Logger) *Assistant {
	if opts.HistoryTurns <= 0 {
		opts.HistoryTurns = 6
	}
	if opts.ContextCap <= 0 {
		opts.ContextCap = 2000
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}
	return &Assistant{provider: p, profiles: profiles, log: log, opts: opts, logger: logger}
}

type TurnInput struct {
	UserID string
	Query  string
	Extra  string // extracted document/page text, already display-safe
}

type TurnResult struct {
	Reply       string              `json:"reply"`
	Lang        string              `json:"lang"`
	RiskScore   int                 `json:"risk_score"`
	NeedsLawyer bool                `json:"needs_lawyer"`
	ErrKind     providers.ErrorType `json:"err_kind,omitempty"`
}

// Respond executes one turn. The user message is recorded before dispatch; the
// assistant message is recorded only on success, so a failed turn never leaves
// a half-written assistant entry behind. On model failure the typed error and
// its classified kind are returned; converting them to display text is the
// presentation layer's job.
func (a *Assistant) Respond(ctx context.Context, in TurnInput) (TurnResult, error) {
	p, err := a.profiles.LoadOrCreate(ctx, in.UserID)
	if err != nil {
		return TurnResult{}, fmt.Errorf("load profile: %w", err)
	}

	lang := classify.Language(in.Query)
	riskScore, needsLawyer := AssessLawyerNeed(in.Query, len(p.Cases))
	res := TurnResult{Lang: lang, RiskScore: riskScore, NeedsLawyer: needsLawyer}

	history, err := a.log.History(ctx, in.UserID)
	if err != nil {
		return res, fmt.Errorf("load history: %w", err)
	}

	prompt := BuildPrompt(PromptInput{
		Profile:     p,
		Query:       in.Query,
		Extra:       in.Extra,
		History:     conversation.LastTurns(history, a.opts.HistoryTurns),
		Lang:        lang,
		NeedsLawyer: needsLawyer,
		ContextCap:  a.opts.ContextCap,
	})

	if err := a.log.Append(ctx, in.UserID, models.RoleUser, in.Query); err != nil {
		return res, fmt.Errorf("record user message: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, a.opts.RequestTimeout)
	defer cancel()
	resp, info, err := a.provider.Generate(genCtx, providers.GenerateRequest{Operation: "chat", Prompt: prompt})
	if err != nil {
		res.ErrKind = providers.ClassifyError(err)
		a.logger.Warn().
			Str("user_id", in.UserID).
			Str("provider", info.Name).
			Str("err_kind", string(res.ErrKind)).
			Err(err).
			Msg("model dispatch failed")
		return res, fmt.Errorf("model dispatch: %w", err)
	}

	// The reply passes through verbatim; section-format compliance is not
	// validated locally.
	res.Reply = resp.Text
	if err := a.log.Append(ctx, in.UserID, models.RoleAssistant, resp.Text); err != nil {
		return res, fmt.Errorf("record assistant message: %w", err)
	}

	a.logger.Info().
		Str("user_id", in.UserID).
		Str("provider", info.Name).
		Str("model", info.Model).
		Str("lang", lang).
		Int("risk_score", riskScore).
		Bool("needs_lawyer", needsLawyer).
		Int("reply_chars", len(resp.Text)).
		Msg("chat turn completed")
	return res, nil
}
