package wsmsg_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/rapidmidiex/rmxtheory/expr"
	"github.com/rapidmidiex/rmxtheory/interval"
	"github.com/rapidmidiex/rmxtheory/wsmsg"
	"github.com/stretchr/testify/require"
)

func TestMsgTypeMarshaling(t *testing.T) {
	t.Run("unmarshals type from JSON", func(t *testing.T) {
		message := []byte(`{
    "id": "7b0f33ba-8a50-446d-aaa4-4de4aa96fc6c",
    "type": "eval",
    "payload": {
        "expr": "M3 + m3"
    },
    "replyTo": "00000000-0000-0000-0000-000000000000"
}`)

		var got wsmsg.Envelope
		err := json.Unmarshal(message, &got)
		require.NoError(t, err)

		require.Equal(t, wsmsg.EVAL, got.Typ)
		var msg wsmsg.EvalMsg
		require.NoError(t, got.Unwrap(&msg))
		require.Equal(t, "M3 + m3", msg.Expr)
	})

	t.Run("marshals type to JSON", func(t *testing.T) {
		message := wsmsg.Envelope{
			Typ: wsmsg.RESULT,
		}

		got, err := json.Marshal(message)
		require.NoError(t, err)
		want := `"type":"result"`
		require.Containsf(t, string(got), want, "JSON does not contain [ %s ]\n%s", want, string(got))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		var got wsmsg.Envelope
		err := json.Unmarshal([]byte(`{"type": "midi"}`), &got)
		require.Error(t, err)
	})
}

func TestReply(t *testing.T) {
	t.Run("answers with the evaluated result", func(t *testing.T) {
		req, err := wsmsg.New(wsmsg.EVAL, wsmsg.EvalMsg{Expr: "C4 + P5"})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, req.ID)

		res, err := wsmsg.Reply(req, expr.Evaluator{})
		require.NoError(t, err)
		require.Equal(t, wsmsg.RESULT, res.Typ)
		require.Equal(t, req.ID, res.ReplyTo)

		var msg wsmsg.ResultMsg
		require.NoError(t, res.Unwrap(&msg))
		require.Equal(t, wsmsg.ResultMsg{Expr: "C4 + P5", Kind: "pitch", Value: "G4", HalfSteps: 67}, msg)
	})

	t.Run("honours the evaluator's tritone", func(t *testing.T) {
		req, err := wsmsg.New(wsmsg.EVAL, wsmsg.EvalMsg{Expr: "steps -6"})
		require.NoError(t, err)

		res, err := wsmsg.Reply(req, expr.Evaluator{Tritone: interval.DiminishedFifth})
		require.NoError(t, err)
		var msg wsmsg.ResultMsg
		require.NoError(t, res.Unwrap(&msg))
		require.Equal(t, "-d5", msg.Value)
		require.Equal(t, -6, msg.HalfSteps)
	})

	t.Run("answers bad expressions with an error", func(t *testing.T) {
		req, err := wsmsg.New(wsmsg.EVAL, wsmsg.EvalMsg{Expr: "C4 + D4"})
		require.NoError(t, err)

		res, err := wsmsg.Reply(req, expr.Evaluator{})
		require.NoError(t, err)
		require.Equal(t, wsmsg.ERROR, res.Typ)
		var msg wsmsg.ErrorMsg
		require.NoError(t, res.Unwrap(&msg))
		require.Contains(t, msg.Error, "syntax error")
	})

	t.Run("only replies to eval messages", func(t *testing.T) {
		req, err := wsmsg.New(wsmsg.RESULT, wsmsg.ResultMsg{})
		require.NoError(t, err)
		_, err = wsmsg.Reply(req, expr.Evaluator{})
		require.Error(t, err)
	})
}
