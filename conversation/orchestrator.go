package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/safwanpaleri/roundtable/logger"
	metrics "github.com/safwanpaleri/roundtable/metrics/prometheus"
	"github.com/safwanpaleri/roundtable/prompt"
	"github.com/safwanpaleri/roundtable/providers"
	"github.com/safwanpaleri/roundtable/types"
)

// distressKeywords trigger a moderator calming intervention when found
// in the most recent utterance.
var distressKeywords = []string{
	"frustrated", "angrily", "sadly", "mockingly", "worried", "worriedly",
}

// LatencyRecorder receives one latency sample per completion call,
// attributed to the participant that issued it.
type LatencyRecorder interface {
	RecordLatency(participant int, latency time.Duration)
}

// Orchestrator drives one conversation session through its states:
// moderator intro, scheduled main loop, moderator conclusion.
type Orchestrator struct {
	cfg       SessionConfig
	scheduler *Scheduler
	hook      PresentationHook
	recorder  LatencyRecorder

	history       History
	lastSpeaker   int
	dialogueCount int
}

// NewOrchestrator creates an orchestrator for one session. recorder may
// be nil when latency collection is not wanted.
func NewOrchestrator(cfg SessionConfig, scheduler *Scheduler, hook PresentationHook, recorder LatencyRecorder) *Orchestrator {
	if hook == nil {
		hook = NopHook{}
	}
	return &Orchestrator{
		cfg:         cfg,
		scheduler:   scheduler,
		hook:        hook,
		recorder:    recorder,
		lastSpeaker: -1,
	}
}

// History returns the session transcript accumulated so far.
func (o *Orchestrator) History() *History {
	return &o.history
}

// Run executes the whole session. The transcript is available from
// History after Run returns. A failed completion call never aborts the
// session; the turn proceeds with empty text.
func (o *Orchestrator) Run(ctx context.Context) error {
	moderator := o.cfg.ModeratorIndex()
	if moderator < 0 {
		return fmt.Errorf("session %s has no moderator in its roster", o.cfg.ID)
	}

	start := time.Now()
	metrics.RecordSessionStart()
	status := "success"
	defer func() {
		metrics.RecordSessionEnd(status, time.Since(start).Seconds())
	}()

	o.resetSession()

	logger.Info("session starting",
		"session", o.cfg.ID.String(),
		"topic", o.cfg.Topic,
		"participants", len(o.cfg.Roster),
		"budget", o.cfg.DialogueBudget)

	o.intro(ctx, moderator)

	for o.dialogueCount <= o.cfg.DialogueBudget {
		if err := ctx.Err(); err != nil {
			status = "error"
			return err
		}

		outcome := o.scheduler.Next(o.cfg.Roster, o.lastSpeaker, o.history.Last().Text)
		if outcome.Interruption {
			o.interruptionTurn(ctx, moderator, outcome.Tied)
		} else {
			o.primaryTurn(ctx, moderator, outcome.Winner)
		}

		o.dialogueCount++
	}

	o.conclusion(ctx, moderator)

	logger.Info("session complete",
		"session", o.cfg.ID.String(),
		"dialogues", o.history.Len())
	return nil
}

// resetSession clears per-session participant state. A fresh session
// always starts from zero emotion and zero turn timers.
func (o *Orchestrator) resetSession() {
	for _, p := range o.cfg.Roster {
		p.LastSpoken = 0
		p.EmotionalScore = 0
	}
	o.history = History{}
	o.lastSpeaker = -1
	o.dialogueCount = 0
}

// intro has the moderator open the session. The intro counts as the
// first dialogue against the budget.
func (o *Orchestrator) intro(ctx context.Context, moderator int) {
	p := o.cfg.Roster[moderator]
	o.hook.FocusSpeaker(p)

	var text string
	if p.Player {
		text, _ = o.hook.PlayerInput(ctx, p)
	} else {
		content := prompt.Intro(p.Name, p.Description, o.cfg.OtherDescriptions(moderator), o.cfg.Topic)
		text = o.completeModerator(ctx, moderator, content)
	}

	o.speak(ctx, moderator, text)
	o.dialogueCount++
}

// conclusion has the moderator close the session with a summary of the
// full transcript.
func (o *Orchestrator) conclusion(ctx context.Context, moderator int) {
	p := o.cfg.Roster[moderator]
	o.hook.FocusSpeaker(p)

	var text string
	if p.Player {
		text, _ = o.hook.PlayerInput(ctx, p)
	} else {
		content := prompt.Conclusion(p.Name, p.Description, o.cfg.OtherDescriptions(moderator), o.cfg.Topic, o.history.Lines())
		text = o.completeModerator(ctx, moderator, content)
	}

	o.speak(ctx, moderator, text)
}

// primaryTurn generates one normal turn for an outright winner.
func (o *Orchestrator) primaryTurn(ctx context.Context, moderator, speaker int) {
	metrics.RecordTurn("primary")
	p := o.cfg.Roster[speaker]
	o.hook.FocusSpeaker(p)

	var text string
	switch {
	case p.Player:
		text, _ = o.hook.PlayerInput(ctx, p)
	case p.Moderator:
		text = o.complete(ctx, speaker, prompt.ModeratorQuestion())
	default:
		text = o.complete(ctx, speaker, "")
	}

	o.speak(ctx, speaker, text)

	if !p.Player {
		o.checkDistress(ctx, moderator, text)
	}
}

// interruptionTurn resolves a tie: the winner speaks, every other
// eligible tied participant apologizes in roster order, then the winner
// speaks again. The apology completions are fetched in parallel but
// appended in roster order.
func (o *Orchestrator) interruptionTurn(ctx context.Context, moderator int, tied []TiedSpeaker) {
	metrics.RecordTurn("interruption")

	winner := InterruptionWinner(o.cfg.Roster, tied)
	if winner < 0 {
		logger.Warn("interruption tie has no eligible winner, skipping turn",
			"session", o.cfg.ID.String(), "tied", len(tied))
		return
	}
	w := o.cfg.Roster[winner]

	o.hook.FocusSpeaker(w)
	o.speak(ctx, winner, o.complete(ctx, winner, ""))

	type apologizer struct {
		id   int
		text string
	}
	apologizers := make([]apologizer, 0, len(tied)-1)
	for _, t := range tied {
		if t.ID == winner || !t.Eligible {
			continue
		}
		apologizers = append(apologizers, apologizer{id: t.ID})
	}

	instruction := prompt.Apology(w.Name, w.Description)
	g, gctx := errgroup.WithContext(ctx)
	for i := range apologizers {
		i := i
		g.Go(func() error {
			apologizers[i].text = o.complete(gctx, apologizers[i].id, instruction)
			return nil
		})
	}
	// complete never returns an error; failures become empty turns.
	_ = g.Wait()

	for _, a := range apologizers {
		metrics.RecordTurn("apology")
		o.hook.FocusSpeaker(o.cfg.Roster[a.id])
		o.speak(ctx, a.id, a.text)
	}

	o.hook.FocusSpeaker(w)
	text := o.complete(ctx, winner, "")
	o.speak(ctx, winner, text)

	o.checkDistress(ctx, moderator, text)
}

// checkDistress scans the just-spoken text for distress keywords and,
// when found, issues an out-of-turn calming line from the moderator.
// The intervention joins the transcript and the turn timers but does
// not count against the dialogue budget.
func (o *Orchestrator) checkDistress(ctx context.Context, moderator int, text string) {
	lowered := strings.ToLower(text)
	found := false
	for _, kw := range distressKeywords {
		if strings.Contains(lowered, kw) {
			found = true
			break
		}
	}
	if !found {
		return
	}

	p := o.cfg.Roster[moderator]
	if p.Player {
		return
	}

	metrics.RecordTurn("intervention")
	logger.Info("distress detected, moderator intervening",
		"session", o.cfg.ID.String(), "moderator", p.Name)

	o.hook.FocusSpeaker(p)
	if moderator == 0 {
		o.speak(ctx, moderator, o.complete(ctx, moderator, prompt.CalmInstruction()))
	} else {
		// The calming instruction for non-lead moderators enters the
		// transcript itself as a bare line, and the completion carries
		// no explicit instruction. Inherited behavior, kept as is.
		o.history.Append("", prompt.CalmInstruction())
		o.speak(ctx, moderator, o.complete(ctx, moderator, ""))
	}
}

// speak appends the utterance, presents it, and advances every
// participant's turn timer.
func (o *Orchestrator) speak(ctx context.Context, speaker int, text string) {
	p := o.cfg.Roster[speaker]
	o.history.Append(p.Name, text)

	if text != "" {
		if err := o.hook.Utterance(ctx, p, text); err != nil {
			logger.Warn("presentation failed", "speaker", p.Name, "error", err)
		}
	}

	for i, rp := range o.cfg.Roster {
		rp.ResetTurnTimer(i == speaker)
	}
	o.lastSpeaker = speaker
}

// complete issues one completion call for a participant, with the full
// transcript as context and an optional trailing instruction. A failed
// call is logged and yields empty text; latency is recorded either way.
func (o *Orchestrator) complete(ctx context.Context, speaker int, instruction string) string {
	p := o.cfg.Roster[speaker]

	messages := make([]types.Message, 0, o.history.Len()+1)
	for _, line := range o.history.Lines() {
		messages = append(messages, types.Message{Role: "user", Content: line})
	}
	if instruction != "" {
		messages = append(messages, types.Message{Role: "user", Content: instruction})
	}

	req := providers.ChatRequest{
		System: prompt.Character(p.Name, p.Description, o.cfg.Topic,
			o.cfg.OtherNames(speaker), p.AdditionalPrompt),
		Messages: messages,
	}

	return o.dispatch(ctx, speaker, req)
}

// completeModerator issues a self-contained moderator completion with
// no character system prompt and no history context.
func (o *Orchestrator) completeModerator(ctx context.Context, speaker int, content string) string {
	req := providers.ChatRequest{
		Messages: []types.Message{{Role: "user", Content: content}},
	}
	return o.dispatch(ctx, speaker, req)
}

func (o *Orchestrator) dispatch(ctx context.Context, speaker int, req providers.ChatRequest) string {
	p := o.cfg.Roster[speaker]
	if p.Provider == nil {
		logger.Warn("participant has no provider", "participant", p.Name)
		return ""
	}

	resp, err := p.Provider.Chat(ctx, req)
	if o.recorder != nil {
		o.recorder.RecordLatency(speaker, resp.Latency)
	}
	if err != nil {
		metrics.RecordProviderRequest(p.Provider.ID(), "error", resp.Latency.Seconds())
		logger.LLMError(p.Provider.ID(), p.Name, err)
		return ""
	}
	metrics.RecordProviderRequest(p.Provider.ID(), "success", resp.Latency.Seconds())

	return strings.TrimSpace(resp.Content)
}
