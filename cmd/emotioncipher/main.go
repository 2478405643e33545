// Command emotioncipher is a small driver for the emotion cipher library:
// it manages a key directory and encrypts or decrypts single messages from
// the command line, printing JSON results suitable for scripting.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	emotioncipher "github.com/muhammadnavas/emotioncipher-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: emotioncipher <keygen|encrypt|decrypt|report> [args]")
	}

	godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	session, err := newSession()
	if err != nil {
		fatal("create session: %v", err)
	}

	switch os.Args[1] {
	case "keygen":
		keygen(ctx, session)
	case "encrypt":
		if len(os.Args) < 3 {
			fatal("usage: emotioncipher encrypt <message>")
		}
		encrypt(ctx, session, strings.Join(os.Args[2:], " "))
	case "decrypt":
		if len(os.Args) < 3 {
			fatal("usage: emotioncipher decrypt <ciphertext>")
		}
		decrypt(ctx, session, os.Args[2])
	case "report":
		report(session)
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func newSession() (*emotioncipher.Session, error) {
	keyDir := os.Getenv("EMOTIONCIPHER_KEY_DIR")
	if keyDir == "" {
		keyDir = "keys"
	}

	opts := []emotioncipher.Option{
		emotioncipher.WithKeyStorage(emotioncipher.NewDirStorage(keyDir)),
		emotioncipher.WithKeyPassphrase(os.Getenv("EMOTIONCIPHER_PASSPHRASE")),
	}

	if apiKey := os.Getenv("CLASSIFIER_API_KEY"); apiKey != "" {
		opts = append(opts, emotioncipher.WithClassifier(apiKey))
		if url := os.Getenv("CLASSIFIER_URL"); url != "" {
			opts = append(opts, emotioncipher.WithClassifierBaseURL(url))
		}
		if model := os.Getenv("CLASSIFIER_MODEL"); model != "" {
			opts = append(opts, emotioncipher.WithClassifierModel(model))
		}
	}

	return emotioncipher.New(opts...)
}

func keygen(ctx context.Context, session *emotioncipher.Session) {
	if err := session.EnsureKeys(ctx); err != nil {
		fatal("prepare keys: %v", err)
	}
	printJSON(session.Status())
}

func encrypt(ctx context.Context, session *emotioncipher.Session, message string) {
	result, err := session.ProcessMessage(ctx, message)
	if err != nil {
		fatal("encrypt: %v", err)
	}
	printJSON(result)
}

func decrypt(ctx context.Context, session *emotioncipher.Session, ciphertext string) {
	result, err := session.DecryptMessage(ctx, ciphertext)
	if err != nil {
		fatal("decrypt: %v", err)
	}
	printJSON(result)
}

func report(session *emotioncipher.Session) {
	exported, err := session.ExportReport()
	if err != nil {
		fatal("export report: %v", err)
	}
	printJSON(exported)
}

func printJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal("encode output: %v", err)
	}
	fmt.Println(string(data))
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
