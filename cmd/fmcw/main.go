package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GRASBOCK/fmcw-radar-demo-0/sim"
	"github.com/GRASBOCK/fmcw-radar-demo-0/sim/http"
	"github.com/GRASBOCK/fmcw-radar-demo-0/store"
)

var rootCmd = &cobra.Command{
	Use:   "fmcw",
	Short: "An FMCW radar scene simulator.",
}

var (
	listenAddr string
	scenePath  string
	outPath    string
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator dashboard",
		Run:   func(cmd *cobra.Command, args []string) { serve() },
	}
	serveCmd.Flags().StringVarP(&listenAddr, "listen", "l", ":8080", "Listen address")
	serveCmd.Flags().StringVarP(&scenePath, "scene", "s", "scene.json", "Scene file")
	rootCmd.AddCommand(serveCmd)

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "Compute one frame and write it as JSON",
		Run:   func(cmd *cobra.Command, args []string) { frame() },
	}
	frameCmd.Flags().StringVarP(&scenePath, "scene", "s", "scene.json", "Scene file")
	frameCmd.Flags().StringVarP(&outPath, "out", "o", "-", "Output file")
	rootCmd.AddCommand(frameCmd)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write the chart report",
		Run:   func(cmd *cobra.Command, args []string) { report() },
	}
	reportCmd.Flags().StringVarP(&scenePath, "scene", "s", "scene.json", "Scene file")
	reportCmd.Flags().StringVarP(&outPath, "out", "o", "report.html", "Output file")
	rootCmd.AddCommand(reportCmd)

	sceneCmd := &cobra.Command{
		Use:   "scene",
		Short: "Scene file commands",
	}
	sceneInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default scene file",
		Run:   func(cmd *cobra.Command, args []string) { sceneInit() },
	}
	sceneInitCmd.Flags().StringVarP(&scenePath, "scene", "s", "scene.json", "Scene file")
	sceneCmd.AddCommand(sceneInitCmd)
	rootCmd.AddCommand(sceneCmd)
}

func frame() {
	s := sim.NewServer(scenePath)
	f, err := s.Frame()
	if err != nil {
		panic(err)
	}
	w, err := sim.OpenOutput(outPath)
	if err != nil {
		panic(err)
	}
	defer w.Close()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		panic(err)
	}
}

func report() {
	s := sim.NewServer(scenePath)
	f, err := s.Frame()
	if err != nil {
		panic(err)
	}
	if err := sim.WriteReportFile(outPath, f, s.Scenes.Scene()); err != nil {
		panic(err)
	}
}

func sceneInit() {
	if err := store.WriteSceneFile(scenePath, store.DefaultScene()); err != nil {
		panic(err)
	}
	fmt.Println("wrote", scenePath)
}

func serve() {
	s := sim.NewServer(scenePath)
	fmt.Printf("serving http on %s...\n", listenAddr)
	if err := http.ServeHttp(s, listenAddr); err != nil {
		fmt.Println(err)
	}
}

func main() {
	rootCmd.Execute()
}
