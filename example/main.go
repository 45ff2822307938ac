package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"

	"github.com/asterixkit/getafix/asterix"
	"github.com/asterixkit/getafix/cat"
)

func main() {
	// Build the decoder from the built-in category schemas
	registry, err := cat.BuiltinRegistry()
	if err != nil {
		fmt.Printf("Failed to build registry: %v\n", err)
		return
	}

	decoder, err := asterix.NewDecoder(registry)
	if err != nil {
		fmt.Printf("Failed to create decoder: %v\n", err)
		return
	}

	// Connect to a surveillance data feed
	conn, err := net.Dial("tcp", "localhost:21000")
	if err != nil {
		fmt.Printf("Failed to connect: %v\n", err)
		return
	}
	defer conn.Close()

	reader := asterix.NewReader(conn, decoder)
	defer reader.Close()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		conn.Close()
	}()

	for {
		result, err := reader.Next()
		if err != nil {
			fmt.Printf("Stream ended: %v\n", err)
			return
		}

		for _, rec := range result.Records {
			fmt.Print(rec.String())
		}
	}
}
