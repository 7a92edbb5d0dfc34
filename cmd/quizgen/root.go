package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"doc-quiz/internal/domain"
	"doc-quiz/internal/dto"
	"doc-quiz/internal/extractor"
	"doc-quiz/internal/quizgen"
	"doc-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
)

type options struct {
	server  string
	local   bool
	asJSON  bool
	seed    uint64
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "quizgen FILE",
		Short: "Generate a fill-in-the-blank quiz from a .pdf or .txt document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				quiz []dto.QuizItemResponse
				err  error
			)
			if opts.local {
				quiz, err = generateLocal(cmd.Context(), args[0], opts.seed)
			} else {
				quiz, err = generateRemote(opts.server, args[0], opts.timeout)
			}
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), quiz, opts.asJSON)
		},
	}

	cmd.Flags().StringVar(&opts.server, "server", "http://127.0.0.1:5000", "base URL of a running doc-quiz server")
	cmd.Flags().BoolVar(&opts.local, "local", false, "extract and generate in-process instead of calling a server")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the raw JSON quiz")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "fixed random seed for --local runs (0 picks one at random)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout for server mode")

	return cmd
}

func generateLocal(ctx context.Context, path string, seed uint64) ([]dto.QuizItemResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rnd := quizgen.NewRandomSource()
	if seed != 0 {
		rnd = quizgen.NewSeededSource(seed)
	}
	svc := service.NewQuizService(extractor.New(), quizgen.New(rnd, quizgen.DefaultOptions()))

	if ctx == nil {
		ctx = context.Background()
	}
	quiz, err := svc.GenerateQuiz(ctx, filepath.Base(path), f)
	if err != nil {
		return nil, err
	}
	return dto.NewQuizResponse(quiz), nil
}

func generateRemote(server, path string, timeout time.Duration) ([]dto.QuizItemResponse, error) {
	agent := fiber.Post(strings.TrimRight(server, "/") + "/api/upload")
	agent.Timeout(timeout)
	agent.SendFile(path, "file").MultipartForm(nil)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("request to %s failed: %w", server, errs[0])
	}
	return decodeResponse(status, body)
}

func decodeResponse(status int, body []byte) ([]dto.QuizItemResponse, error) {
	if status != fiber.StatusOK {
		var errResp dto.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error == "" {
			return nil, fmt.Errorf("server returned %d: %s", status, strings.TrimSpace(string(body)))
		}
		return nil, fmt.Errorf("server returned %d: %s", status, errResp.Error)
	}

	var quiz []dto.QuizItemResponse
	if err := json.Unmarshal(body, &quiz); err != nil {
		return nil, fmt.Errorf("failed to decode quiz: %w", err)
	}
	return quiz, nil
}

func render(w io.Writer, quiz []dto.QuizItemResponse, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(quiz)
	}

	for i, item := range quiz {
		fmt.Fprintf(w, "%d. %s\n", i+1, item.Question)
		for j, opt := range item.Options {
			fmt.Fprintf(w, "   %c) %s\n", 'a'+j, opt)
		}
		fmt.Fprintf(w, "   answer: %s\n\n", item.Answer)
	}
	fmt.Fprintf(w, "%d question(s); blanks are marked %s\n", len(quiz), domain.BlankMarker)
	return nil
}
