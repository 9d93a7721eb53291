// Package wsmsg contains the message types clients exchange to request and
// report expression evaluations.
package wsmsg

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rapidmidiex/rmxtheory/expr"
)

type (
	MsgType int

	Envelope struct {
		// Message identifier
		ID uuid.UUID `json:"id"`
		// EvalMsg | ResultMsg | ErrorMsg
		Typ MsgType `json:"type"`
		// Identifier of the request a result or error answers.
		ReplyTo uuid.UUID `json:"replyTo"`
		// Actual message data.
		Payload json.RawMessage `json:"payload"`
	}

	EvalMsg struct {
		Expr string `json:"expr"`
	}

	ResultMsg struct {
		Expr string `json:"expr"`
		// "interval" | "pitch"
		Kind  string `json:"kind"`
		Value string `json:"value"`
		// Signed span for intervals, MIDI number for pitches.
		HalfSteps int `json:"halfSteps"`
	}

	ErrorMsg struct {
		Expr  string `json:"expr"`
		Error string `json:"error"`
	}
)

const (
	EVAL MsgType = iota
	RESULT
	ERROR
)

// New returns an envelope with a fresh ID around payload.
func New(typ MsgType, payload any) (Envelope, error) {
	e := Envelope{ID: uuid.New(), Typ: typ}
	return e, e.SetPayload(payload)
}

// NewResult describes the value an expression evaluated to.
func NewResult(src string, v expr.Value) ResultMsg {
	return ResultMsg{
		Expr:      src,
		Kind:      v.Kind.String(),
		Value:     v.String(),
		HalfSteps: v.HalfSteps(),
	}
}

// Reply evaluates the expression carried by an EVAL envelope and returns the
// RESULT or ERROR envelope answering it.
func Reply(req Envelope, ev expr.Evaluator) (Envelope, error) {
	if req.Typ != EVAL {
		return Envelope{}, fmt.Errorf("cannot reply to %s message", req.Typ)
	}
	var msg EvalMsg
	if err := req.Unwrap(&msg); err != nil {
		return Envelope{}, fmt.Errorf("unwrapping eval: %w", err)
	}

	var (
		res Envelope
		err error
	)
	if v, evalErr := ev.Eval(msg.Expr); evalErr != nil {
		res, err = New(ERROR, ErrorMsg{Expr: msg.Expr, Error: evalErr.Error()})
	} else {
		res, err = New(RESULT, NewResult(msg.Expr, v))
	}
	if err != nil {
		return Envelope{}, err
	}
	res.ReplyTo = req.ID
	return res, nil
}

func (e *Envelope) SetPayload(payload any) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	e.Payload = p
	return nil
}

func (e *Envelope) Unwrap(msg any) error {
	return json.Unmarshal(e.Payload, msg)
}

func (t MsgType) String() string {
	switch t {
	case EVAL:
		return "eval"
	case RESULT:
		return "result"
	case ERROR:
		return "error"
	}
	return fmt.Sprintf("MsgType(%d)", int(t))
}

func (t *MsgType) UnmarshalJSON(data []byte) error {
	var rawType string
	err := json.Unmarshal(data, &rawType)
	if err != nil {
		return err
	}

	switch rawType {
	case "eval":
		*t = EVAL
	case "result":
		*t = RESULT
	case "error":
		*t = ERROR
	default:
		return fmt.Errorf("unknown type: %s", rawType)
	}
	return nil
}

func (t MsgType) MarshalJSON() ([]byte, error) {
	switch t {
	case EVAL, RESULT, ERROR:
		return json.Marshal(t.String())
	}
	return []byte{}, fmt.Errorf("unknown MsgTyp value: %d", t)
}
