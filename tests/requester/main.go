package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:4000/api/order/userorders"
	fixedID = "M2fJlvVUpJY0ZvLY"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomID(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

func doRequest() {
	userID := fixedID
	if rand.Intn(5) == 0 {
		userID = randomID(12)
	}

	// каждый десятый запрос без userId, чтобы видеть 400 в метриках
	body := fmt.Sprintf(`{"userId":%q}`, userID)
	if rand.Intn(10) == 0 {
		body = `{}`
	}

	resp, err := http.Post(baseURL, "application/json", bytes.NewBufferString(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("POST", baseURL, userID, "->", resp.Status)
}
