// Package emotioncipher provides a secure emotion-aware message cipher:
// RSA-OAEP encryption of whole messages combined with best-effort emotion
// annotation from an external classification service.
//
// A Session owns one RSA key pair and an append-only audit trail. Keys are
// generated on first use (or loaded from a KeyStorage such as DirStorage)
// and every operation, successful or not, is recorded for export.
//
// Basic usage:
//
//	session, err := emotioncipher.New(
//	    emotioncipher.WithKeyStorage(emotioncipher.NewDirStorage("keys")),
//	    emotioncipher.WithClassifier(os.Getenv("CLASSIFIER_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := session.ProcessMessage(ctx, "I am thrilled!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Ciphertext:", result.Ciphertext)
//	if result.Annotation != nil {
//	    fmt.Println("Emotion:", result.Annotation.PrimaryEmotion)
//	}
//
//	recovered, err := session.DecryptMessage(ctx, result.Ciphertext)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Plaintext:", recovered.Plaintext)
//
// The classifier is an opaque collaborator: its failures drop the annotation
// but never fail the cipher operation. Messages are bounded by the OAEP
// capacity of the key (190 bytes at 2048 bits); larger messages are rejected,
// never chunked.
package emotioncipher
