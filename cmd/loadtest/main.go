package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	rps      = 20
	duration = 3 * time.Minute
	sessions = 25
)

var (
	targetHost = envOr("LOADTEST_TARGET", "http://localhost:8081")
	queries    = []string{"a", "ad", "adm", "admin", "mem", "member", "mail", "1", "2", ""}
	sessionIDs []string
	httpc      = &http.Client{Timeout: 10 * time.Second}
)

type sessionResponse struct {
	SessionID string `json:"session_id"`
	View      struct {
		Total     int `json:"total"`
		PageCount int `json:"page_count"`
	} `json:"view"`
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Seed
func mountSessions() error {
	log.Printf("Mounting %d tables...", sessions)

	for i := 0; i < sessions; i++ {
		resp, err := httpc.Post(targetHost+"/sessions", "application/json", nil)
		if err != nil {
			return err
		}

		var s sessionResponse
		err = json.NewDecoder(resp.Body).Decode(&s)
		resp.Body.Close()
		if err != nil {
			return err
		}
		if resp.StatusCode >= 400 {
			log.Printf("WARN POST /sessions returned %d\n", resp.StatusCode)
			continue
		}

		sessionIDs = append(sessionIDs, s.SessionID)
		if i == 0 {
			log.Printf("First table: members=%d pages=%d", s.View.Total, s.View.PageCount)
		}
		time.Sleep(20 * time.Millisecond)
	}

	if len(sessionIDs) == 0 {
		return fmt.Errorf("no sessions mounted")
	}
	log.Printf("Mounted sessions: %d\n", len(sessionIDs))
	return nil
}

func jsonTarget(t *vegeta.Target, method, url string, body any) {
	b, _ := json.Marshal(body)
	t.Method = method
	t.URL = url
	t.Body = b
	t.Header = map[string][]string{"Content-Type": {"application/json"}}
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		base := fmt.Sprintf("%s/sessions/%s", targetHost, sessionIDs[rand.Intn(len(sessionIDs))])
		r := rand.Float64()

		// 50% ввод в поле поиска
		if r < 0.50 {
			jsonTarget(t, http.MethodPut, base+"/search", map[string]string{"query": queries[rand.Intn(len(queries))]})
			return nil
		}

		// 20% GET view
		if r < 0.70 {
			t.Method = http.MethodGet
			t.URL = base
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 15% переключение страницы
		if r < 0.85 {
			jsonTarget(t, http.MethodPut, base+"/page", map[string]int{"page": 1 + rand.Intn(3)})
			return nil
		}

		// 10% выбор строки
		if r < 0.95 {
			jsonTarget(t, http.MethodPost, base+"/selection/toggle", map[string]int{"row": rand.Intn(10)})
			return nil
		}

		// 5% редактирование
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/rows/%d/edit", base, 1+rand.Intn(40))
		t.Body = nil
		t.Header = map[string][]string{"Accept": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "members-table") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)
}

func main() {
	if err := mountSessions(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
