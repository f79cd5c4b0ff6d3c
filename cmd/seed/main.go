// Demo-data seeder: provisions a pair of users, gives them pieces, opens a
// chat between them and exchanges a few messages through the public API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/DylanCarver9706/McDonalds-Monopoly-Pieces/internal/shared/jwt"

	"github.com/brianvoe/gofakeit/v6"
)

var baseURL = func() string {
	if v := os.Getenv("SEED_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}()

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	// Provision two users with fake external identities.
	aliceExt := gofakeit.UUID()
	bobExt := gofakeit.UUID()
	aliceID, err := provisionUser(aliceExt, gofakeit.FirstName()+" "+gofakeit.LetterN(1))
	if err != nil {
		log.Fatalf("provision alice: %v", err)
	}
	bobID, err := provisionUser(bobExt, gofakeit.FirstName()+" "+gofakeit.LetterN(1))
	if err != nil {
		log.Fatalf("provision bob: %v", err)
	}
	log.Printf("users: alice=%d bob=%d", aliceID, bobID)

	// Browse the catalog.
	listJSON("/pieces")
	listJSON("/boards")

	// Give alice a couple of pieces.
	for i := 0; i < 2; i++ {
		addUserPiece(aliceExt, int64(gofakeit.Number(1, 5)), int64(gofakeit.Number(1, 20)))
	}
	listJSON(fmt.Sprintf("/user-pieces?actor=%s", aliceExt))

	// Open a chat and trade a few words.
	chatID := getOrCreateChat(aliceExt, bobID)
	log.Printf("chat: %d", chatID)
	sendMessage(aliceExt, chatID, "trade?")
	sendMessage(bobExt, chatID, "sure — what do you have?")
	listJSON(fmt.Sprintf("/chats?actor=%s", aliceExt))
	listJSON(fmt.Sprintf("/chats/%d?actor=%s", chatID, bobExt))
}

func token(externalID string) string {
	tok, err := jwt.Make(externalID)
	if err != nil {
		log.Fatalf("make token: %v", err)
	}
	return tok
}

func do(method, path, externalID string, body any) (map[string]any, int) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, err := http.NewRequest(method, baseURL+path, &buf)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if externalID != "" {
		req.Header.Set("Authorization", "Bearer "+token(externalID))
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)
	log.Printf("%s %s -> %d", method, path, resp.StatusCode)
	return out, resp.StatusCode
}

const maxNameAttempts = 5

// provisionUser registers the external identity, disambiguating a taken
// username with a _N suffix the way the onboarding client does.
func provisionUser(externalID, username string) (int64, error) {
	for i := 0; i < maxNameAttempts; i++ {
		name := username
		if i > 0 {
			name = fmt.Sprintf("%s_%d", username, i)
		}
		out, status := do("POST", "/users", externalID, map[string]any{"username": name})
		switch {
		case status == http.StatusCreated || status == http.StatusOK:
			id, _ := out["user_id"].(float64)
			return int64(id), nil
		case status == http.StatusConflict:
			continue
		default:
			return 0, fmt.Errorf("POST /users (%s): status %d", name, status)
		}
	}
	return 0, fmt.Errorf("username %q taken after %d attempts", username, maxNameAttempts)
}

func addUserPiece(externalID string, boardID, pieceID int64) {
	_, _ = do("POST", "/user-pieces", externalID, map[string]any{
		"board_id":      boardID,
		"piece_id":      pieceID,
		"city_acquired": gofakeit.City(),
	})
}

func getOrCreateChat(actorExt string, targetID int64) int64 {
	out, status := do("POST", "/chats", "", map[string]any{
		"actor":          actorExt,
		"target_user_id": targetID,
	})
	if status != http.StatusOK {
		log.Fatalf("POST /chats: status %d", status)
	}
	id, _ := out["id"].(float64)
	return int64(id)
}

func sendMessage(externalID string, chatID int64, content string) {
	_, status := do("POST", "/messages", externalID, map[string]any{
		"chat_id": chatID,
		"content": content,
	})
	if status != http.StatusCreated {
		log.Fatalf("POST /messages: status %d", status)
	}
}

func listJSON(path string) {
	resp, err := http.Get(baseURL + path)
	if err != nil {
		log.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	log.Printf("GET %s -> %d", path, resp.StatusCode)
}
