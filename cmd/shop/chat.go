package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/safar/go-store-assistant/internal/assistant"
	"github.com/safar/go-store-assistant/internal/speech"
)

// chatLoop runs the interactive assistant REPL. The last assistant
// turn's actions stay activatable by number until the next message.
func chatLoop(d *deps, in io.Reader, out io.Writer) error {
	session := d.assistant.Session()
	session.Open()

	for _, turn := range session.Turns() {
		printTurn(out, turn)
	}

	var lastTurn assistant.Turn
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":

		case line == "quit" || line == "exit":
			return nil

		case strings.HasPrefix(line, "voice "):
			transcript, err := listen(d, strings.TrimPrefix(line, "voice "), out)
			if err != nil {
				fmt.Fprintf(out, "voice input failed: %v\n", err)
				break
			}
			lastTurn = d.assistant.HandleMessage(transcript)
			printTurn(out, lastTurn)

		default:
			if n, err := strconv.Atoi(line); err == nil {
				if err := d.assistant.Activate(lastTurn.ID, n-1); err != nil {
					fmt.Fprintf(out, "could not activate action %d: %v\n", n, err)
				} else {
					turns := session.Turns()
					printTurn(out, turns[len(turns)-1])
				}
				break
			}

			lastTurn = d.assistant.HandleMessage(line)
			printTurn(out, lastTurn)
		}

		fmt.Fprint(out, "> ")
	}

	return scanner.Err()
}

// listen routes text through the simulated recognizer so the
// interim/final event flow is exercised end to end.
func listen(d *deps, text string, out io.Writer) (string, error) {
	manager := speech.NewManager(&speech.Simulated{
		Transcript: text,
		ChunkDelay: 50 * time.Millisecond,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	events, err := manager.Start(ctx)
	if err != nil {
		return "", err
	}

	for event := range events {
		switch event.Kind {
		case speech.EventInterim:
			fmt.Fprintf(out, "listening: %s\r", event.Text)
		case speech.EventFinal:
			fmt.Fprintf(out, "heard: %s\n", event.Text)
			return event.Text, nil
		case speech.EventError:
			return "", event.Err
		}
	}

	return "", fmt.Errorf("listening ended without a transcript")
}

func printTurn(out io.Writer, turn assistant.Turn) {
	prefix := "assistant"
	if turn.Role == assistant.RoleUser {
		prefix = "you"
	}
	fmt.Fprintf(out, "[%s] %s\n", prefix, turn.Content)
	for i, action := range turn.Actions {
		fmt.Fprintf(out, "  %d. %s\n", i+1, action.Label())
	}
}
