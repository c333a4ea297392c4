package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors       int
	LoginSuccess      int
	LoginFailures     int
	OrdersCreated     int
	PaymentsCaptured  int
	SignatureFailures int
	GatewayFailures   int
	WebhooksLogged    int
	ErrorPatterns     map[string]int
}

func main() {
	today := time.Now().Format("2006-01-02")
	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "./logs"
	}

	stats := &LogStats{
		ErrorPatterns: make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if strings.Contains(line, "Login attempt failed") {
			stats.LoginFailures++
		}
		if strings.Contains(line, "Signature mismatch") {
			stats.SignatureFailures++
		}
		if strings.Contains(line, "Gateway order creation failed") {
			stats.GatewayFailures++
		}

		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "User logged in successfully") {
			stats.LoginSuccess++
		}
		if strings.Contains(line, "Created gateway order") {
			stats.OrdersCreated++
		}
		if strings.Contains(line, "Captured payment") {
			stats.PaymentsCaptured++
		}
		if strings.Contains(line, "Webhook event") {
			stats.WebhooksLogged++
		}
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Authentication:")
	fmt.Printf("   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Printf("   Failed Logins: %d\n", stats.LoginFailures)

	fmt.Println("\n2. Payments:")
	fmt.Printf("   Gateway Orders Created: %d\n", stats.OrdersCreated)
	fmt.Printf("   Payments Captured: %d\n", stats.PaymentsCaptured)
	fmt.Printf("   Signature Failures: %d\n", stats.SignatureFailures)
	fmt.Printf("   Gateway Failures: %d\n", stats.GatewayFailures)
	fmt.Printf("   Webhooks Logged: %d\n", stats.WebhooksLogged)

	fmt.Println("\n3. Error Statistics:")
	fmt.Printf("   Total Errors: %d\n", stats.TotalErrors)

	fmt.Println("\n4. Most Common Errors:")
	printTopErrors(stats.ErrorPatterns, 5)
}

func printTopErrors(errors map[string]int, limit int) {
	type errorCount struct {
		message string
		count   int
	}

	var errorList []errorCount
	for msg, count := range errors {
		errorList = append(errorList, errorCount{msg, count})
	}

	sort.Slice(errorList, func(i, j int) bool {
		return errorList[i].count > errorList[j].count
	})

	for i, ec := range errorList {
		if i >= limit {
			break
		}
		fmt.Printf("   %s: %d occurrences\n", ec.message, ec.count)
	}
}
