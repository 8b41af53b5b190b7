package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/f3rmion/nizk/bjj"
	"github.com/f3rmion/nizk/bridge"
	"github.com/f3rmion/nizk/edwards"
	"github.com/f3rmion/nizk/group"
	"github.com/f3rmion/nizk/rendezvous"
	"github.com/f3rmion/nizk/secp256k1"
	"github.com/f3rmion/nizk/session"
	"github.com/f3rmion/nizk/zkdl"
)

var rootCmd = &cobra.Command{
	Use:   "zkdl",
	Short: "Discrete-logarithm proof-of-knowledge toolkit",
	Long:  "Prove and verify knowledge of an elliptic-curve discrete logarithm, run the pairing services, or perform a live two-party handshake.",
}

var flagCurve string

func groupFromFlag() (group.Group, error) {
	switch flagCurve {
	case "secp256k1":
		return secp256k1.New(), nil
	case "edwards25519":
		return edwards.New(), nil
	case "babyjubjub":
		return bjj.New(), nil
	default:
		return nil, fmt.Errorf("unknown curve %q (use secp256k1, edwards25519, or babyjubjub)", flagCurve)
	}
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCurve, "curve", "secp256k1", "Curve: secp256k1|edwards25519|babyjubjub")

	var demoSession string
	var demoParty uint64
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Prove and verify a sample statement, with timings",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := groupFromFlag()
			if err != nil {
				return err
			}
			e, err := zkdl.New(g)
			if err != nil {
				return err
			}

			x, err := g.RandomScalar(rand.Reader)
			if err != nil {
				return err
			}
			y := g.NewPoint().ScalarMult(x, g.Generator())
			fmt.Printf("curve:    %s\n", g.Name())
			fmt.Printf("secret x: %s\n", hex.EncodeToString(x.Bytes()))
			fmt.Printf("public y: %s\n", hex.EncodeToString(y.Bytes()))

			start := time.Now()
			proof, err := e.Prove(rand.Reader, demoSession, demoParty, x, y, g.Generator())
			if err != nil {
				return err
			}
			fmt.Printf("prove:    %s\n", time.Since(start))
			fmt.Printf("proof T:  %s\n", hex.EncodeToString(proof.T.Bytes()))
			fmt.Printf("proof S:  %s\n", hex.EncodeToString(proof.S.Bytes()))

			start = time.Now()
			ok := e.Verify(proof, demoSession, demoParty, y, g.Generator())
			fmt.Printf("verify:   %s\n", time.Since(start))

			if !ok {
				return fmt.Errorf("proof did not verify")
			}
			fmt.Println("DLOG proof is correct")
			return nil
		},
	}
	demoCmd.Flags().StringVar(&demoSession, "session", "sid", "Session id bound into the proof")
	demoCmd.Flags().Uint64Var(&demoParty, "party", 1, "Party id bound into the proof")
	rootCmd.AddCommand(demoCmd)

	var serveAddr string
	var serveWait time.Duration
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the rendezvous barrier and message relay",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()

			barrier := rendezvous.NewServer(
				rendezvous.WithWait(serveWait),
				rendezvous.WithLogger(log.With().Str("component", "rendezvous").Logger()),
			)
			relay := bridge.NewRelay(
				bridge.WithLogger(log.With().Str("component", "relay").Logger()),
			)

			m := http.NewServeMux()
			m.Handle("/sync/", barrier.Handler())
			m.Handle("/relay/", relay.Handler())
			srv := &http.Server{Addr: serveAddr, Handler: m}

			errc := make(chan error, 1)
			go func() { errc <- srv.ListenAndServe() }()
			log.Info().Str("addr", serveAddr).Dur("wait", serveWait).Msg("serving")

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			select {
			case err := <-errc:
				return err
			case s := <-sig:
				log.Info().Str("signal", s.String()).Msg("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(ctx)
			}
		},
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost:3030", "Listen address")
	serveCmd.Flags().DurationVar(&serveWait, "wait", rendezvous.DefaultWait, "Barrier wait for the second party")
	rootCmd.AddCommand(serveCmd)

	var hsServer, hsSession string
	var hsParty uint64
	var hsTimeout time.Duration
	handshakeCmd := &cobra.Command{
		Use:   "handshake",
		Short: "Run one side of a live two-party handshake",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := groupFromFlag()
			if err != nil {
				return err
			}
			log := newLogger()

			party, err := session.NewParty(g, hsParty, session.WithLogger(log))
			if err != nil {
				return err
			}
			x, err := g.RandomScalar(rand.Reader)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), hsTimeout)
			defer cancel()

			wsBase := strings.Replace(hsServer, "http", "ws", 1)
			tr, err := bridge.Dial(ctx, wsBase+"/relay/"+hsSession)
			if err != nil {
				return err
			}
			defer tr.Close()

			res, err := party.Handshake(ctx, rand.Reader, hsSession, x, rendezvous.NewClient(hsServer), tr)
			if err != nil {
				return err
			}
			fmt.Printf("peer %d proved knowledge of key %s\n",
				res.PeerID, hex.EncodeToString(res.PeerKey.Bytes()))
			return nil
		},
	}
	handshakeCmd.Flags().StringVar(&hsServer, "server", "http://localhost:3030", "Rendezvous/relay base URL")
	handshakeCmd.Flags().StringVar(&hsSession, "session", "", "Opaque session id agreed with the peer")
	handshakeCmd.Flags().Uint64Var(&hsParty, "party", 1, "This party's id (peers must differ)")
	handshakeCmd.Flags().DurationVar(&hsTimeout, "timeout", 30*time.Second, "Overall handshake timeout")
	handshakeCmd.MarkFlagRequired("session")
	rootCmd.AddCommand(handshakeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
