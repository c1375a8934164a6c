package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/funkygao/kafkatsdb"
	"github.com/funkygao/kafkatsdb/cmd/kafkatsdb/bootstrap"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:    "kafkatsdb",
		Usage:   "Ship go-metrics as OpenTSDB put records to kafka",
		Version: fmt.Sprintf("%s-%s", kafkatsdb.Version, kafkatsdb.BuildId),
		Flags:   bootstrap.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			t0 := time.Now()
			if err := bootstrap.Main(ctx, cmd); err != nil {
				return err
			}

			log.Infof("kafkatsdb[%s@%s] %s, bye!", kafkatsdb.BuildId, kafkatsdb.BuiltAt, time.Since(t0))
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
