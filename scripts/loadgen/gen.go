package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tcfw/starnotary/internal/api"
	"github.com/tcfw/starnotary/internal/utils/logging"
	"github.com/tcfw/starnotary/pkg/cryptography"
	"github.com/tcfw/starnotary/pkg/storage"
)

var constellations = []string{"Orion", "Lyra", "Cygnus", "Centaurus", "Scorpius", "Ursa Major"}

func main() {
	addr := flag.String("addr", "http://127.0.0.1:8000", "daemon address")
	wallets := flag.Int("wallets", 3, "number of wallets to register with")
	stars := flag.Int("stars", 10, "number of stars to register")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := api.NewClientWithURL(*addr, 5)
	if err != nil {
		panic(err)
	}

	keys := make([]*cryptography.Secp256k1PrivateKey, 0, *wallets)
	for i := 0; i < *wallets; i++ {
		sk, err := cryptography.NewEcdsaSecp256k1PrivateKey()
		if err != nil {
			panic(err)
		}
		keys = append(keys, sk)
	}

	for i := 0; i < *stars; i++ {
		sk := keys[rand.Intn(len(keys))]

		v, err := client.RequestValidation(ctx, sk.Address())
		if err != nil {
			panic(err)
		}

		sig, err := sk.SignMessage(v.Message)
		if err != nil {
			panic(err)
		}

		b, err := client.SubmitStar(ctx, &api.SubmitStarRequest{
			Address:   sk.Address(),
			Message:   v.Message,
			Signature: hexutil.Encode(sig),
			Star: &storage.Star{
				RA:            fmt.Sprintf("%02dh %02dm %04.1fs", rand.Intn(24), rand.Intn(60), rand.Float64()*60),
				Dec:           fmt.Sprintf("%d° %02d' %04.1f", rand.Intn(180)-90, rand.Intn(60), rand.Float64()*60),
				Constellation: constellations[rand.Intn(len(constellations))],
			},
		})
		if err != nil {
			logging.WithError(err).Error("registering star")
			continue
		}

		logging.Entry().WithField("height", b.Height).WithField("owner", sk.Address()).Info("registered")
	}

	res, err := client.Validate(ctx)
	if err != nil {
		panic(err)
	}

	fmt.Printf("height=%d valid=%v findings=%d\n", res.Height, res.Valid, len(res.Findings))
}
