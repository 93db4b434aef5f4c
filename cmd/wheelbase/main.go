package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mastercactapus/wheelbase/drive"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	log.SetFlags(log.Lshortfile)

	cfgFile := flag.String("config", "", "Path to a YAML config file.")
	addr := flag.String("addr", "", "Address to bind the wheelbase server to.")
	adapterName := flag.String("adapter", "", "Motor adapter to use (sim, serial or can).")
	port := flag.String("port", "", "Serial port path.")
	useShell := flag.Bool("shell", false, "Start the interactive development shell.")
	flag.Parse()

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *adapterName != "" {
		cfg.Adapter = *adapterName
	}
	if *port != "" {
		cfg.Serial.Port = *port
	}
	err = cfg.Validate()
	if err != nil {
		log.Fatal("ERROR: config: ", err)
	}

	if cfg.Log.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
		}
		defer lj.Close()
		if *useShell {
			// keep the shell readable
			log.SetOutput(lj)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, lj))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter, err := openAdapter(ctx, cfg)
	if err != nil {
		log.Fatal("ERROR: adapter: ", err)
	}
	d := drive.New(adapter, cfg.Drive.options())
	defer func() {
		err := d.Close()
		if err != nil {
			log.Println("ERROR: close drive:", err)
		}
	}()

	api := newAPI(d)
	defer api.Close()

	if *useShell {
		go newShell(ctx, d).Start()
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "*")
			log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
			api.ServeHTTP(w, req)
		}),
	}
	go func() {
		<-ctx.Done()
		log.Println("Shutting down")
		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(sCtx)
	}()

	log.Printf("Listening on %s (adapter: %s)", cfg.Addr, cfg.Adapter)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Println("ERROR: serve:", err)
	}
}
