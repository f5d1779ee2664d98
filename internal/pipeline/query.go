package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/davitran/audioscribe/internal/engine"
)

// queryLoop is the read-evaluate cycle over the interactive surface: one
// question per line, answered against the fixed summary context. The
// case-insensitive exit word terminates the loop; a failed question is
// reported and the loop continues.
func (p *implPipeline) queryLoop(ctx context.Context, summary string) error {
	scanner := bufio.NewScanner(p.deps.Input)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprintf(p.deps.Output, "\nAsk a question (type '%s' to quit): ", p.cfg.ExitWord)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read question: %w", err)
			}
			return nil
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if strings.EqualFold(question, p.cfg.ExitWord) {
			return nil
		}

		answer, err := p.deps.Answerer.Answer(ctx, summary, question)
		if err != nil {
			qerr := &engine.QueryError{Err: err}
			p.deps.Logger.Error(ctx, "%v", qerr)
			fmt.Fprintf(p.deps.Output, "\nCould not answer that question: %v\n", err)
			continue
		}

		fmt.Fprintf(p.deps.Output, "\nAnswer: %s\n", strings.TrimSpace(answer))
	}
}
