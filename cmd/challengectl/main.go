// Command challengectl decodes and builds Privacy Pass token challenges.
//
// Decode a base64url challenge (argument or stdin):
//
//	challengectl AAEAA2FiYwAABWQsZSxm
//
// Build one:
//
//	challengectl -encode -issuer issuer.example -origins origin.example -redemption-context
package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/layer-3/privacypass"
	"github.com/layer-3/privacypass/names"
)

func main() {
	var (
		encode    = flag.Bool("encode", false, "build a challenge from flags instead of decoding one")
		tokenType = flag.Uint("token-type", uint(privacypass.TokenTypeVOPRF), "token type to encode")
		issuer    = flag.String("issuer", "", "issuer name to encode")
		origins   = flag.String("origins", "", "comma-separated origin names to encode")
		withCtx   = flag.Bool("redemption-context", false, "attach a fresh random 32-byte redemption context")
		validate  = flag.Bool("validate", false, "also check issuer and origin names for server-name syntax")
		asHex     = flag.Bool("hex", false, "read and write hex instead of base64url")
	)
	flag.Parse()

	if *encode {
		if *tokenType > 0xFFFF {
			log.Fatalf("Token type %d does not fit in 16 bits", *tokenType)
		}
		runEncode(uint16(*tokenType), *issuer, *origins, *withCtx, *asHex)
		return
	}

	input := flag.Arg(0)
	if input == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
		input = string(data)
	}

	raw, err := decodeInput(input, *asHex)
	if err != nil {
		log.Fatalf("Failed to decode input: %v", err)
	}

	challenge, err := privacypass.UnmarshalTokenChallenge(raw)
	if err != nil {
		log.Fatalf("Failed to parse token challenge: %v", err)
	}

	printChallenge(challenge)

	if *validate {
		if err := names.Validate(challenge.Issuer()); err != nil {
			log.Fatalf("Issuer name check failed: %v", err)
		}
		if err := names.ValidateAll(challenge.OriginInfo()); err != nil {
			log.Fatalf("Origin name check failed: %v", err)
		}
	}
}

func runEncode(tokenType uint16, issuer, origins string, withCtx, asHex bool) {
	var originInfo []string
	if origins != "" {
		originInfo = strings.Split(origins, ",")
	}

	var redemptionContext []byte
	if withCtx {
		redemptionContext = make([]byte, privacypass.RedemptionContextSize)
		if _, err := rand.Read(redemptionContext); err != nil {
			log.Fatalf("Failed to generate redemption context: %v", err)
		}
	}

	challenge, err := privacypass.NewTokenChallenge(tokenType, issuer, redemptionContext, originInfo)
	if err != nil {
		log.Fatalf("Failed to build token challenge: %v", err)
	}

	raw, err := challenge.Marshal()
	if err != nil {
		log.Fatalf("Failed to serialize token challenge: %v", err)
	}

	if asHex {
		fmt.Println(hex.EncodeToString(raw))
	} else {
		fmt.Println(base64.RawURLEncoding.EncodeToString(raw))
	}
}

func decodeInput(input string, asHex bool) ([]byte, error) {
	input = strings.TrimSpace(input)
	if asHex {
		return hex.DecodeString(input)
	}
	return base64.RawURLEncoding.DecodeString(input)
}

func printChallenge(challenge privacypass.TokenChallenge) {
	fmt.Printf("token type:         0x%04x\n", challenge.TokenType())
	fmt.Printf("issuer:             %s\n", challenge.Issuer())
	if redemptionContext := challenge.RedemptionContext(); len(redemptionContext) > 0 {
		fmt.Printf("redemption context: %s\n", hex.EncodeToString(redemptionContext))
	} else {
		fmt.Printf("redemption context: (none)\n")
	}
	origins := challenge.OriginInfo()
	if len(origins) == 0 {
		fmt.Printf("origin info:        (any origin)\n")
		return
	}
	for i, origin := range origins {
		fmt.Printf("origin info[%d]:     %s\n", i, origin)
	}
}
