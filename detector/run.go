package detector

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fake_news_detector/evidence"
)

// Stage is a step of one analysis.
type Stage string

const (
	StageIdle         Stage = "idle"
	StageGathering    Stage = "gathering"
	StagePrompting    Stage = "prompting"
	StageRequesting   Stage = "requesting"
	StageInterpreting Stage = "interpreting"
	StageDone         Stage = "done"
	StageFailed       Stage = "failed"
)

var transitions = map[Stage][]Stage{
	StageIdle:         {StageGathering},
	StageGathering:    {StagePrompting, StageFailed},
	StagePrompting:    {StageRequesting},
	StageRequesting:   {StageInterpreting, StageFailed},
	StageInterpreting: {StageDone},
}

// Terminal reports whether no further transition is possible.
func (s Stage) Terminal() bool {
	return s == StageDone || s == StageFailed
}

func canTransition(from, to Stage) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// StageChange 记录一次阶段切换。
type StageChange struct {
	From Stage     `json:"from"`
	To   Stage     `json:"to"`
	At   time.Time `json:"at"`
}

// Run 持有一次分析的全部上下文，仅在单次请求内存活。
type Run struct {
	ID         string          `json:"id"`
	Claim      string          `json:"claim"`
	Config     RequestConfig   `json:"config"`
	Stage      Stage           `json:"stage"`
	History    []StageChange   `json:"history"`
	Evidence   []evidence.Item `json:"evidence"`
	Request    AnalysisRequest `json:"-"`
	Completion string          `json:"-"`
	Verdict    *Verdict        `json:"verdict,omitempty"`
	Err        error           `json:"-"`
}

// NewRun creates a run in the idle stage.
func NewRun(claim string, cfg RequestConfig) *Run {
	return &Run{
		ID:     uuid.NewString(),
		Claim:  claim,
		Config: cfg,
		Stage:  StageIdle,
	}
}

func (r *Run) advance(to Stage) error {
	if !canTransition(r.Stage, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.Stage, to)
	}
	r.History = append(r.History, StageChange{From: r.Stage, To: to, At: time.Now()})
	r.Stage = to
	return nil
}

func (r *Run) fail(err error) error {
	r.Err = err
	if terr := r.advance(StageFailed); terr != nil {
		return terr
	}
	return err
}
