package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/WangWilly/unisat-connector/pkgs/clipkg/commandline"
	"github.com/WangWilly/unisat-connector/pkgs/clipkg/helpers/syscfghelper"
	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/clients/unisatclient"
	"github.com/WangWilly/unisat-connector/pkgs/commonpkg/repos/journalrepo"
	"github.com/gookit/color"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

const DEFAULT_JOURNAL_ROWS = 20

type JournalSource interface {
	GetJournalDB() (*sqlx.DB, error)
}

func main() {
	////////////////////////////////////////////////////////////////////////////
	// Command Line Arguments Setup
	////////////////////////////////////////////////////////////////////////////
	var endpointArg commandline.EndpointArg
	var confArg bool
	var confPath string
	var isDebug bool
	var inQuery bool
	var offset int
	var limit int
	var filterType string
	var height int64

	flag.BoolVar(&confArg, "conf", false, "reconfigure")
	flag.StringVar(&confPath, "config", "", "config file (default ~/.unisat/conf.yaml)")
	flag.BoolVar(&isDebug, "debug", false, "display debug message")
	flag.Var(&endpointArg, "endpoint", "mainnet, testnet, whitelist or a base url")
	flag.IntVar(&offset, "offset", 0, "page offset")
	flag.IntVar(&limit, "limit", unisatclient.DEFAULT_PAGE_SIZE, "page size")
	flag.StringVar(&filterType, "type", "", "event type filter")
	flag.Int64Var(&height, "height", 0, "block height filter")
	flag.BoolVar(&inQuery, "query", false, "send params in the query string instead of the body")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 && args[0] == commandline.CMD_ENDPOINTS {
		commandline.PrintEndpoints(os.Stdout)
		return
	}

	////////////////////////////////////////////////////////////////////////////
	// System Setup
	////////////////////////////////////////////////////////////////////////////
	helper, err := syscfghelper.New(syscfghelper.CliParams{
		IsDebug:       isDebug,
		ConfOverWrite: confArg,
		ConfPath:      confPath,
		Endpoint:      endpointArg.String(),
		ParamsInQuery: inQuery,
	})
	if err != nil {
		log.Fatalln(err)
	}
	defer helper.Close()
	if confArg {
		log.Println("config done")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// listen signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sigChan)
	go func() {
		sig, ok := <-sigChan
		if ok {
			log.Warnln("[listener] caught signal:", sig)
			cancel()
		}
	}()

	if len(args) > 0 && args[0] == commandline.CMD_JOURNAL {
		rows := limit
		if rows <= 0 {
			rows = DEFAULT_JOURNAL_ROWS
		}
		if err := printJournal(ctx, helper, rows); err != nil {
			helper.Close()
			log.Fatalln("failed to read journal:", err)
		}
		return
	}

	////////////////////////////////////////////////////////////////////////////
	// Main Job Execution
	////////////////////////////////////////////////////////////////////////////
	inv, err := commandline.ParseInvocation(args)
	if err != nil {
		if errors.Is(err, commandline.ErrNoCommand) {
			flag.Usage()
		}
		helper.Close()
		log.Fatalln(err)
	}

	client, err := helper.GetMainClient()
	if err != nil {
		helper.Close()
		log.Fatalln("failed to create client:", err)
	}
	defer client.Close()

	resp, err := client.Invoke(
		ctx,
		inv.Endpoint.Name,
		inv.PathArgs,
		unisatclient.Page{Offset: offset, Limit: limit},
		unisatclient.Filters{Type: filterType, Height: height},
	)

	var clientErr *unisatclient.ClientError
	if errors.As(err, &clientErr) && clientErr.Response != nil {
		resp = clientErr.Response
	}
	if resp != nil {
		printResponse(resp)
	}
	if err != nil {
		client.Close()
		helper.Close()
		log.Fatalln(err)
	}
}

////////////////////////////////////////////////////////////////////////////////

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintln(out, "unisat - UniSat indexer client")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "usage: unisat [flags] <endpoint> [path args...]")
	fmt.Fprintln(out, "       unisat [flags] endpoints")
	fmt.Fprintln(out, "       unisat [flags] journal [-limit N]")
	fmt.Fprintln(out)
	flag.PrintDefaults()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "endpoints:")
	commandline.PrintEndpoints(out)
}

func printResponse(resp *unisatclient.Response) {
	status := color.FgGreen
	if resp.StatusCode != 200 || resp.Code() != 0 {
		status = color.FgRed
	}
	status.Printf("http %d, code %d: %s\n", resp.StatusCode, resp.Code(), resp.Msg())
	fmt.Println(gjson.GetBytes(resp.Bytes(), "@pretty").String())
}

func printJournal(ctx context.Context, helper JournalSource, rows int) error {
	db, err := helper.GetJournalDB()
	if err != nil {
		return err
	}
	repo := journalrepo.New()

	recent, err := repo.ListRecent(ctx, db, rows)
	if err != nil {
		return err
	}
	color.FgLightBlue.Println("recent calls:")
	for _, rec := range recent {
		line := fmt.Sprintf("  %s  %s %s  http %d  attempts %d  %dms",
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Method, rec.Route, rec.StatusCode, rec.Attempts, rec.DurationMs)
		if rec.Error != "" {
			color.FgRed.Println(line + "  " + rec.Error)
			continue
		}
		fmt.Println(line)
	}

	counts, err := repo.CountByRoute(ctx, db)
	if err != nil {
		return err
	}
	color.FgLightBlue.Println("calls per route:")
	for _, c := range counts {
		fmt.Printf("  %6d  %6d failed  %s\n", c.Count, c.Failed, c.Route)
	}
	return nil
}
