// Command interophelper exercises the sealkit envelope format from the
// command line so cross-implementation test suites can pipe payloads
// through this library and compare results with other producers and
// consumers of the same format.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	sealkit "github.com/sealkit/sealkit-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: interophelper <command> [args]")
	}

	switch os.Args[1] {
	case "new-key":
		newKey(os.Args[2:])
	case "keygen":
		keygen(os.Args[2:])
	case "prepare":
		if len(os.Args) < 3 {
			fatal("usage: interophelper prepare <hexKey> [clientId] < plaintext")
		}
		prepare(os.Args[2:])
	case "open":
		if len(os.Args) < 3 {
			fatal("usage: interophelper open <hexKey> < envelope")
		}
		open(os.Args[2])
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func newKey(args []string) {
	length := 32
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("bad key length: %v", err)
		}
		length = n
	}

	hexKey, err := sealkit.GenerateAESKey(length)
	if err != nil {
		fatal("generate key: %v", err)
	}
	fmt.Println(hexKey)
}

func keygen(args []string) {
	var opts []sealkit.KeyPairOption
	if len(args) > 0 {
		bits, err := strconv.Atoi(args[0])
		if err != nil {
			fatal("bad key size: %v", err)
		}
		opts = append(opts, sealkit.WithBits(bits))
	}

	pair, err := sealkit.GenerateRSAKeyPair(opts...)
	if err != nil {
		fatal("generate key pair: %v", err)
	}

	if err := json.NewEncoder(os.Stdout).Encode(pair); err != nil {
		fatal("encode key pair: %v", err)
	}
}

func prepare(args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	var opts []sealkit.EnvelopeOption
	if len(args) > 1 {
		opts = append(opts, sealkit.WithClientID(args[1]))
	}

	envelope, err := sealkit.PrepareData(data, args[0], opts...)
	if err != nil {
		fatal("prepare data: %v", err)
	}
	fmt.Println(envelope)
}

func open(hexKey string) {
	envelope, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}

	plaintext, err := sealkit.OpenEnvelope(string(trimNewline(envelope)), hexKey)
	if err != nil {
		fatal("open envelope: %v", err)
	}
	os.Stdout.Write(plaintext)
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
