package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"pet-records/internal/domain/cats"
	"pet-records/internal/domain/dogs"
	"pet-records/internal/platform/httpclient"

	"github.com/olekukonko/tablewriter"
)

type cmdList struct {
	Addr    string        `long:"addr" env:"API_ADDR" default:"http://localhost:8080" description:"Base URL of a running server"`
	Kind    string        `long:"kind" short:"k" default:"cat" choice:"cat" choice:"dog" description:"Record kind to list"`
	Timeout time.Duration `long:"timeout" default:"10s" description:"Request timeout"`
}

func (cmd *cmdList) Execute(_ []string) error {
	client, err := httpclient.New(cmd.Addr, cmd.Timeout)
	if err != nil {
		return err
	}
	return cmd.run(context.Background(), client, os.Stdout)
}

func (cmd *cmdList) run(ctx context.Context, client *httpclient.Client, out io.Writer) error {
	table := tablewriter.NewWriter(out)

	switch cmd.Kind {
	case "dog":
		var items []dogs.Dog
		if err := fetch(ctx, client, "/api/dogs", &items); err != nil {
			return err
		}
		table.Header("ID", "Name", "Breed", "Age", "Updated")
		for _, d := range items {
			if err := table.Append([]string{d.ID, d.Name, d.Breed, strconv.Itoa(d.Age), formatTime(d.UpdatedAt)}); err != nil {
				return err
			}
		}

	case "cat":
		var items []cats.Cat
		if err := fetch(ctx, client, "/api/cats", &items); err != nil {
			return err
		}
		table.Header("ID", "Name", "Beds", "Updated")
		for _, c := range items {
			if err := table.Append([]string{c.ID, c.Name, strconv.Itoa(c.BedsOwned), formatTime(c.UpdatedAt)}); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("unknown kind %q", cmd.Kind)
	}

	return table.Render()
}

// fetch traduce un 404 a un mensaje útil: casi siempre es --addr apuntando a otro servicio.
func fetch(ctx context.Context, client *httpclient.Client, path string, out any) error {
	err := client.GetJSON(ctx, path, nil, out)
	if httpclient.IsNotFound(err) {
		return fmt.Errorf("%s%s not found, is --addr a pet-records server? (%w)", client.BaseURL, path, err)
	}
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
