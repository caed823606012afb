package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rawbytedev/bytebuf"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	payload := strings.Repeat("héllo wörld ", 64)
	for i := 0; i < 10000; i++ {
		w := bytebuf.NewWriteableBufferStream()
		go func() {
			for j := 0; j < 8; j++ {
				w.Write(bytebuf.FromString(payload))
			}
			w.End()
		}()
		out, err := bytebuf.StreamToBuffer(w)
		if err != nil {
			log.Fatal(err)
		}
		_ = out.Slice(16, 64).String()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
