package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/alexvelboy/contact-api/internal/relay"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Fire a test submission through the contact relay",
	Long: `Send posts a contact form submission to a running contact API and
reports the relay result, including whether the auto-reply receipt went
out.

Example:
  contactctl send --email you@example.com --name "Test" --message "Ping"`,
	Run: func(cmd *cobra.Command, args []string) {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		message, _ := cmd.Flags().GetString("message")
		projectType, _ := cmd.Flags().GetString("project-type")
		budget, _ := cmd.Flags().GetString("budget")

		sub := relay.Submission{
			Name:        name,
			Email:       email,
			Message:     message,
			ProjectType: projectType,
			Budget:      budget,
		}

		payload, err := json.Marshal(sub)
		if err != nil {
			fmt.Printf("Failed to encode submission: %v\n", err)
			os.Exit(1)
		}

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Relaying submission..."
		s.Start()
		resp, err := httpClient.Post(serverURL+"/api/contact", "application/json", bytes.NewReader(payload))
		s.Stop()

		if err != nil {
			fmt.Printf("Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		var result struct {
			OK        bool   `json:"ok"`
			ReceiptOK *bool  `json:"receiptOk"`
			Error     string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			fmt.Printf("Unexpected response (status %d): %v\n", resp.StatusCode, err)
			os.Exit(1)
		}

		if !result.OK {
			fmt.Printf("Relay rejected the submission (status %d): %s\n", resp.StatusCode, result.Error)
			os.Exit(1)
		}

		fmt.Println("Submission relayed successfully.")
		if result.ReceiptOK != nil && !*result.ReceiptOK {
			fmt.Println("Warning: the auto-reply receipt did not go out.")
		}
	},
}

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a message to the chat responder",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		lang, _ := cmd.Flags().GetString("lang")

		payload, _ := json.Marshal(map[string]string{
			"message": strings.Join(args, " "),
			"lang":    lang,
		})

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Asking..."
		s.Start()
		resp, err := httpClient.Post(serverURL+"/api/chat", "application/json", bytes.NewReader(payload))
		s.Stop()

		if err != nil {
			fmt.Printf("Request failed: %v\n", err)
			os.Exit(1)
		}
		defer resp.Body.Close()

		var result struct {
			Reply string `json:"reply"`
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			fmt.Printf("Unexpected response (status %d): %v\n", resp.StatusCode, err)
			os.Exit(1)
		}

		if resp.StatusCode != http.StatusOK {
			fmt.Printf("Chat request failed (status %d): %s\n", resp.StatusCode, result.Error)
			os.Exit(1)
		}

		fmt.Println(result.Reply)
	},
}

func init() {
	sendCmd.Flags().String("name", "", "Submitter name")
	sendCmd.Flags().String("email", "", "Submitter email address (required)")
	sendCmd.Flags().String("message", "", "Message body (required)")
	sendCmd.Flags().String("project-type", "", "Project type")
	sendCmd.Flags().String("budget", "", "Budget")
	sendCmd.MarkFlagRequired("email")
	sendCmd.MarkFlagRequired("message")

	chatCmd.Flags().String("lang", "en", "Reply language (en or ua)")
}
