package cmd

import (
	"context"
	"fmt"
	"time"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/infrastructure/apiclient"
	"intern-match/internal/pkg/workerpool"
	"intern-match/internal/seeder"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Post the sample internships and candidates to a running server",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().String("base-url", "http://localhost:8080", "server base URL")
	seedCmd.Flags().Duration("timeout", 5*time.Second, "per-request timeout")
	seedCmd.Flags().Int("concurrency", 2, "parallel requests")
	seedCmd.Flags().Int("rps", 10, "request starts per second, 0 for unlimited")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	baseURL, _ := cmd.Flags().GetString("base-url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	rps, _ := cmd.Flags().GetInt("rps")
	logger := newLogger(cmd)

	client := apiclient.New(baseURL, timeout, logger)
	if client == nil {
		return fmt.Errorf("--base-url is required")
	}

	ctx := cmd.Context()
	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("server is not reachable at %s: %w", baseURL, err)
	}

	postings := seeder.SamplePostings()
	candidates := seeder.SampleCandidates()

	tasks := make([]workerpool.Task, 0, len(postings)+len(candidates))
	for _, p := range postings {
		req := dto.NewPostingRequest(p)
		tasks = append(tasks, workerpool.Task{
			Name: fmt.Sprintf("internship %s at %s", p.Title, p.Company),
			Fn:   func(ctx context.Context) error { return client.CreatePosting(ctx, req) },
		})
	}
	for _, c := range candidates {
		req := dto.NewCandidateRequest(c)
		tasks = append(tasks, workerpool.Task{
			Name: "candidate " + c.Name,
			Fn:   func(ctx context.Context) error { return client.CreateCandidate(ctx, req) },
		})
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range workerpool.New(concurrency, rps).Run(ctx, tasks) {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "failed: %s (%v)\n", r.Name, r.Err)
			continue
		}
		fmt.Fprintf(out, "added: %s\n", r.Name)
	}

	fmt.Fprintf(out, "seeded %d of %d records\n", len(tasks)-failed, len(tasks))
	if failed > 0 {
		return fmt.Errorf("%d records failed", failed)
	}
	return nil
}
