package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func TestChatLoop(t *testing.T) {
	in := strings.NewReader("xem chiến dịch\n\nbận\nexit\nkhông tới đây\n")
	var out bytes.Buffer
	var turns []string

	err := chatLoop(in, &out, func(text string) (*port.Reply, error) {
		turns = append(turns, text)
		if text == "bận" {
			return nil, port.ErrConversationBusy
		}
		return &port.Reply{
			Message:  "Tìm thấy 1 chiến dịch",
			Entities: []domain.EntityMatch{{Name: "Tết", EffectiveStatus: "ACTIVE"}},
		}, nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"xem chiến dịch", "bận"}, turns)
	assert.Contains(t, out.String(), "Tìm thấy 1 chiến dịch\n  1. Tết (ACTIVE)\n")
	assert.Contains(t, out.String(), "! "+port.ErrConversationBusy.Error())
}

func TestChatLoopEOF(t *testing.T) {
	err := chatLoop(strings.NewReader("ok"), &bytes.Buffer{}, func(string) (*port.Reply, error) {
		return nil, errors.New("down")
	})
	assert.NoError(t, err)
}
