package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mensunw/people-bets/internal/domain/entity"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/api/dto"
	"github.com/mensunw/people-bets/internal/infrastructure/adapter/auth"
	timeProvider "github.com/mensunw/people-bets/internal/infrastructure/adapter/time"
)

// TestResult contains metrics for a single stake request
type TestResult struct {
	UserID       string
	Side         string
	Amount       int64
	Duplicate    bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	Accepted          int
	RejectedDuplicate int
	Failed            int
	TotalTime         time.Duration
	ResponseTimes     []time.Duration
	StatusCounts      map[int]int
	AcceptedOver      int64
	AcceptedUnder     int64
	Lock              sync.Mutex
}

type client struct {
	baseURL string
	http    *http.Client
	tokens  *auth.TokenService
}

func (c *client) do(method, path, userID string, body, out any) (int, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return 0, err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, _, err := c.tokens.Sign(entity.Identity{UserID: userID})
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func main() {
	concurrency := flag.Int("c", 10, "Number of concurrent goroutines")
	users := flag.Int("n", 100, "Number of distinct users, each stakes once")
	dupes := flag.Float64("dupes", 0.2, "Fraction of users that retry their stake and expect 409")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("PB_AUTH_SECRET"), "Token signing secret shared with the server")
	issuer := flag.String("issuer", "people-bets", "Token issuer")
	window := flag.Duration("window", 10*time.Minute, "Betting window of the generated proposition")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	tokens, err := auth.NewTokenService(*secret, *issuer, time.Hour, timeProvider.NewRealTimeProvider())
	if err != nil {
		fmt.Printf("Cannot sign tokens: %v\n", err)
		os.Exit(1)
	}
	c := &client{baseURL: *baseURL, http: &http.Client{Timeout: 10 * time.Second}, tokens: tokens}

	creator := uuid.NewString()
	var prop dto.PropositionResponse
	status, err := c.do(http.MethodPost, "/api/v1/propositions", creator, dto.CreatePropositionRequest{
		Title:       fmt.Sprintf("Load test %s", time.Now().Format(time.RFC3339)),
		Description: "Generated by load-test-stakes",
		Target:      json.Number("50"),
		GroupID:     entity.GlobalGroupID,
		WindowEnd:   time.Now().Add(*window),
	}, &prop)
	if err != nil || status != http.StatusCreated {
		fmt.Printf("Cannot create proposition: status=%d err=%v\n", status, err)
		os.Exit(1)
	}

	fmt.Printf("Load testing proposition %s\n", prop.ID)
	fmt.Printf("Users: %d, duplicate fraction: %.2f\n", *users, *dupes)
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)

	stats := &TestStats{
		ResponseTimes: make([]time.Duration, 0, *users),
		StatusCounts:  make(map[int]int),
	}

	jobs := make(chan TestResult, *users*2)
	results := make(chan TestResult, *users*2)

	for i := 0; i < *users; i++ {
		job := TestResult{
			UserID: uuid.NewString(),
			Side:   []string{string(entity.SideOver), string(entity.SideUnder)}[rand.Intn(2)],
			Amount: int64(1 + rand.Intn(100)),
		}
		jobs <- job
		if rand.Float64() < *dupes {
			dup := job
			dup.Duplicate = true
			jobs <- dup
		}
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(c, prop.ID, *delayMs, jobs, results)
		}()
	}

	startTime := time.Now()
	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		stats.TotalRequests++
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		stats.StatusCounts[result.StatusCode]++
		switch {
		case result.StatusCode == http.StatusCreated:
			stats.Accepted++
			if result.Side == string(entity.SideOver) {
				stats.AcceptedOver += result.Amount
			} else {
				stats.AcceptedUnder += result.Amount
			}
		case result.StatusCode == http.StatusConflict:
			stats.RejectedDuplicate++
		default:
			stats.Failed++
		}
		stats.Lock.Unlock()
	}
	stats.TotalTime = time.Since(startTime)

	var final dto.PropositionResponse
	if _, err := c.do(http.MethodGet, "/api/v1/propositions/"+prop.ID, creator, nil, &final); err != nil {
		fmt.Printf("Cannot read final totals: %v\n", err)
		os.Exit(1)
	}

	printResults(stats, final.Totals)
}

func worker(c *client, propositionID string, delayMs int, jobs <-chan TestResult, results chan<- TestResult) {
	for job := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		start := time.Now()
		status, err := c.do(http.MethodPost, "/api/v1/propositions/"+propositionID+"/stakes", job.UserID,
			map[string]any{"side": job.Side, "amount": job.Amount}, nil)
		job.ResponseTime = time.Since(start)
		job.StatusCode = status
		job.Error = err
		results <- job
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats, totals dto.TotalsResponse) {
	sorted := append([]time.Duration(nil), stats.ResponseTimes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Accepted Stakes:     %d\n", stats.Accepted)
	fmt.Printf("Rejected (409):      %d\n", stats.RejectedDuplicate)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n----------------- POOL CHECK -----------------")
	fmt.Printf("Accepted over/under: %d / %d\n", stats.AcceptedOver, stats.AcceptedUnder)
	fmt.Printf("Server over/under:   %d / %d (stakers %d)\n", totals.TotalOver, totals.TotalUnder, totals.Stakers)

	fmt.Println("\n================= CONCLUSION =================")
	if totals.TotalOver == stats.AcceptedOver && totals.TotalUnder == stats.AcceptedUnder && totals.Stakers == stats.Accepted {
		fmt.Println("✅ Pool totals match the accepted stakes")
	} else {
		fmt.Println("❌ Pool totals do not match the accepted stakes")
		os.Exit(1)
	}
}
