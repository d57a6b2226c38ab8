// Command stripekit-probe dispatches a single request through the SDK and
// prints the decoded resource, for smoke-testing an integration or a mock
// API server.
//
// Usage:
//
//	stripekit-probe token <number> <exp_month> <exp_year> <cvc>
//	stripekit-probe get <path>
//	stripekit-probe upload <purpose> <file>
//
// Configuration comes from the environment (or a .env file):
// STRIPE_PUBLISHABLE_KEY, optional STRIPE_ACCOUNT, and optional
// STRIPEKIT_PROBE_URL to aim the probe at a mock server.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	stripekit "github.com/stripekit/client-go"
	"github.com/stripekit/client-go/form"
)

// Config carries the process dependencies so commands can run under test
// with fake stdio and environment.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// rewriteTransport sends composed requests over net/http after swapping
// the fixed API origin for the probe target. The SDK itself never exposes
// a base URL override; pointing elsewhere is a transport concern.
type rewriteTransport struct {
	target string
	client *http.Client
}

func (rt rewriteTransport) Send(ctx context.Context, req *stripekit.ComposedRequest) (*stripekit.RawResponse, error) {
	url := strings.Replace(req.URL, "https://api.stripe.com/v1", rt.target, 1)

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header = req.Header.Clone()
	httpReq.ContentLength = int64(len(req.Body))

	resp, err := rt.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &stripekit.RawResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return errors.New("usage: stripekit-probe <token|get|upload> [args]")
	}

	// Best effort; the environment itself still wins.
	_ = godotenv.Load()

	key := cfg.Getenv("STRIPE_PUBLISHABLE_KEY")
	if key == "" {
		return errors.New("STRIPE_PUBLISHABLE_KEY is not set")
	}
	if strings.HasPrefix(key, "sk_") {
		return errors.New("refusing to run with a secret key; use a publishable key")
	}

	opts := []stripekit.Option{
		stripekit.WithAPIKey(key),
		stripekit.WithAppInfo(stripekit.AppInfo{Name: "stripekit-probe", Version: stripekit.Version}),
	}
	if account := cfg.Getenv("STRIPE_ACCOUNT"); account != "" {
		opts = append(opts, stripekit.WithConnectedAccount(account))
	}
	if target := cfg.Getenv("STRIPEKIT_PROBE_URL"); target != "" {
		opts = append(opts, stripekit.WithTransport(rewriteTransport{
			target: target,
			client: &http.Client{Timeout: 30 * time.Second},
		}))
	}

	client := stripekit.New(opts...)
	defer client.Close()

	switch args[1] {
	case "token":
		return createToken(client, args[2:], cfg)
	case "get":
		if len(args) < 3 {
			return errors.New("usage: stripekit-probe get <path>")
		}
		return getPath(client, args[2], cfg)
	case "upload":
		if len(args) < 4 {
			return errors.New("usage: stripekit-probe upload <purpose> <file>")
		}
		return uploadFile(client, args[2], args[3], cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

// result bridges one async call back to straight-line CLI flow. A map
// target accepts any resource shape.
func result(dispatch func(fn func(*map[string]any, error))) (map[string]any, error) {
	type outcome struct {
		value *map[string]any
		err   error
	}
	ch := make(chan outcome, 1)
	dispatch(func(v *map[string]any, err error) {
		ch <- outcome{value: v, err: err}
	})

	out := <-ch
	if out.err != nil {
		return nil, describeError(out.err)
	}
	return *out.value, nil
}

func createToken(client *stripekit.Client, args []string, cfg Config) error {
	if len(args) != 4 {
		return errors.New("usage: stripekit-probe token <number> <exp_month> <exp_year> <cvc>")
	}
	month, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("parse exp_month: %w", err)
	}
	year, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil {
		return fmt.Errorf("parse exp_year: %w", err)
	}

	params := form.New().
		Set("card", form.Map(form.New().
			Set("number", form.String(args[0])).
			Set("exp_month", form.Int(month)).
			Set("exp_year", form.Int(year)).
			Set("cvc", form.String(args[3]))))

	res, err := result(func(fn func(*map[string]any, error)) {
		stripekit.Post(client, "/tokens", params, fn)
	})
	if err != nil {
		return err
	}
	return printJSON(cfg.Stdout, res)
}

func getPath(client *stripekit.Client, path string, cfg Config) error {
	res, err := result(func(fn func(*map[string]any, error)) {
		stripekit.Get(client, path, nil, fn)
	})
	if err != nil {
		return err
	}
	return printJSON(cfg.Stdout, res)
}

func uploadFile(client *stripekit.Client, purpose, path string, cfg Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	res, err := result(func(fn func(*map[string]any, error)) {
		stripekit.UploadFile(client, "/files",
			stripekit.File{Name: filepath.Base(path), Data: content},
			form.New().Set("purpose", form.String(purpose)), fn)
	})
	if err != nil {
		return err
	}
	return printJSON(cfg.Stdout, res)
}

func describeError(err error) error {
	var apiErr *stripekit.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("api error %d: code=%s message=%q request_id=%s",
			apiErr.StatusCode, apiErr.Code, apiErr.Message, apiErr.RequestID)
	}
	return err
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
