package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	semVer "github.com/hashicorp/go-version"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/nowuX/ams/loaders"
	"github.com/nowuX/ams/mcdr"
	"github.com/nowuX/ams/meta"
	"github.com/nowuX/ams/patch"
	"github.com/nowuX/ams/structs"
	"github.com/nowuX/ams/util"
)

var (
	folderName   string
	loaderName   string
	mcVersion    string
	useMcdr      bool
	forgeLatest  bool
	fabricLoader string
	ownerName    string
	memoryMb     int
	timeoutSecs  int
	auto         bool
	runUpdate    bool
	noColours    bool
	verbose      bool

	logFile *os.File
)

func init() {
	if util.ReleaseVersion == "" {
		util.ReleaseVersion = "v0.0.0-dev"
	}
	if util.GitCommit == "" {
		util.GitCommit = "dev"
	}

	userAgent := fmt.Sprintf("ams/%s", strings.TrimPrefix(util.ReleaseVersion, "v"))
	util.UserAgent = userAgent
	meta.UserAgent = userAgent
}

func main() {
	flag.StringVar(&folderName, "dir", "", "Server folder name (prompted when omitted)")
	flag.StringVar(&loaderName, "loader", "", "Server loader: vanilla, fabric, forge, quilt, carpet112 or paper")
	flag.StringVar(&mcVersion, "version", "", "Minecraft version, empty for latest")
	flag.BoolVar(&useMcdr, "mcdr", false, "Wrap the server with MCDReforged")
	flag.BoolVar(&forgeLatest, "forge-latest", false, "Use the latest Forge promotion instead of recommended")
	flag.StringVar(&fabricLoader, "fabric-loader", "", "Fabric loader version, empty for latest")
	flag.StringVar(&ownerName, "owner", "", "Server owner nickname for the MCDR permission list")
	flag.IntVar(&memoryMb, "memory", 2048, "Server memory limit in MB (-Xmx)")
	flag.IntVar(&timeoutSecs, "timeout", 30, "HTTP timeout in seconds for version index calls")
	flag.BoolVar(&auto, "auto", false, "Dont ask questions, take flags and defaults as-is")
	flag.BoolVar(&runUpdate, "update", false, "Self-update the installer and exit")
	flag.BoolVar(&noColours, "no-colours", false, "Do not display console/terminal colours")
	flag.BoolVar(&verbose, "verbose", false, "Verbose output")
	flag.Parse()

	var err error
	logFile, err = os.OpenFile("ams.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		panic(err)
	}
	defer logFile.Close()

	util.LogMw = io.MultiWriter(os.Stdout, util.NewCustomWriter(logFile))
	pterm.SetDefaultOutput(util.LogMw)

	if noColours {
		pterm.DisableStyling()
	}
	if verbose {
		pterm.EnableDebugMessages()
		pterm.Debug.Println("Verbose output enabled")
	}

	logo, _ := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("A", pterm.NewStyle(pterm.FgCyan)),
		putils.LettersFromStringWithStyle("M", pterm.NewStyle(pterm.FgGreen)),
		putils.LettersFromStringWithStyle("S", pterm.NewStyle(pterm.FgRed))).Srender()
	pterm.DefaultCenter.Println(logo)
	pterm.DefaultCenter.WithCenterEachLineSeparately().
		Printfln("Auto MC server installer %s(%s)\n%s", util.ReleaseVersion, util.GitCommit, time.Now().UTC().Format(time.RFC1123))

	if runUpdate {
		if err := doUpdate(); err != nil {
			pterm.Fatal.Println("Self update failed:", err.Error())
		}
		return
	}
	notifyUpdate()

	checkEnvironment()

	kind := pickLoader()
	version := pickVersion(kind)

	serverDir := makeServerFolder()

	var manager *mcdr.Manager
	if !auto && !useMcdr {
		useMcdr = util.ConfirmYN("Do you want to use MCDR?", false, pterm.Info.MessageStyle)
	}
	if useMcdr {
		manager = setupMcdr(serverDir)
	}

	installDir := serverDir
	if manager != nil {
		installDir, err = manager.ServerDir()
		if err != nil {
			pterm.Fatal.Println("Error reading MCDR config:", err.Error())
		}
	}

	orch := loaders.NewOrchestrator(installDir, loaders.Options{
		Timeout:      time.Duration(timeoutSecs) * time.Second,
		ForgeLatest:  forgeLatest,
		FabricLoader: fabricLoader,
	})
	descriptor, err := orch.Install(kind, version)
	if err != nil {
		pterm.Error.Println("Install error:", err.Error())
		os.Exit(1)
	}

	startCmd := startCommand(descriptor)
	launchCmd := startCmd
	if manager != nil {
		if err := manager.SetStartCommand(startCmd); err != nil {
			pterm.Fatal.Println("Error setting MCDR start command:", err.Error())
		}
		setOwner(manager)
		launchCmd = manager.StartCommand()
	}

	if err := util.WriteLaunchScripts(serverDir, launchCmd); err != nil {
		pterm.Fatal.Println("Error creating launch scripts:", err.Error())
	}
	pterm.Info.Println("Launch scripts created")

	firstRun(serverDir, installDir, manager, descriptor)

	err = util.WriteManifest(serverDir, structs.Manifest{
		Loader:     kind.String(),
		Mcdr:       manager != nil,
		Descriptor: descriptor,
		StartCmd:   launchCmd,
	})
	if err != nil {
		pterm.Warning.Println("Error writing manifest:", err.Error())
	}

	pterm.Success.Println("Server installed successfully")
}

// checkEnvironment aborts right away when the platform or a required binary
// cannot run an install at all.
func checkEnvironment() {
	switch runtime.GOOS {
	case "windows", "linux", "darwin":
	default:
		pterm.Fatal.Printfln("OS %s is currently not supported", runtime.GOOS)
	}
	if !util.CommandExists("java") {
		pterm.Fatal.Println("System can't find java")
	}
}

// pickLoader resolves the loader kind from the flag or an interactive menu.
func pickLoader() loaders.Kind {
	if loaderName != "" {
		kind, err := loaders.ParseKind(loaderName)
		if err != nil {
			pterm.Fatal.Println(err.Error())
		}
		return kind
	}
	if auto {
		return loaders.KindVanilla
	}

	var options []string
	for _, kind := range loaders.Kinds() {
		options = append(options, kind.String())
	}
	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Which loader do you want to use?").
		WithOptions(options).
		Show()
	if err != nil {
		pterm.Fatal.Println("Interactive select error:", err.Error())
	}
	kind, err := loaders.ParseKind(choice)
	if err != nil {
		pterm.Fatal.Println(err.Error())
	}
	return kind
}

// pickVersion resolves the requested version. Carpet is pinned upstream, so
// no question is asked for it.
func pickVersion(kind loaders.Kind) string {
	if kind == loaders.KindCarpet112 {
		return ""
	}
	version := mcVersion
	if version == "" && !auto {
		version, _ = pterm.DefaultInteractiveTextInput.
			WithDefaultText("Which Minecraft version do you want to use? [latest]").
			Show()
		version = strings.TrimSpace(version)
	}
	if kind == loaders.KindFabric && fabricLoader == "" && !auto {
		fabricLoader, _ = pterm.DefaultInteractiveTextInput.
			WithDefaultText("Which Fabric loader version do you want to use? [latest]").
			Show()
		fabricLoader = strings.TrimSpace(fabricLoader)
	}
	if kind == loaders.KindForge && !forgeLatest && !auto {
		forgeLatest = util.ConfirmYN("Use the latest Forge build instead of the recommended one?", false, pterm.Info.MessageStyle)
	}
	return version
}

// makeServerFolder creates the server folder and refuses to reuse one.
func makeServerFolder() string {
	name := folderName
	if name == "" && !auto {
		name, _ = pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter the server folder name [minecraft_server]").
			Show()
	}
	name = util.SanitizeFolderName(name, "minecraft_server")

	exists, err := util.PathExists(name)
	if err != nil {
		pterm.Fatal.Println("Unable to check if folder exists:", err.Error())
	}
	if exists {
		if manifest, err := util.ReadManifest(name); err == nil {
			pterm.Warning.Printfln("Folder %s already holds a %s server", name, manifest.Loader)
		}
		pterm.Fatal.Printfln("Folder %s already exists", name)
	}

	pterm.Info.Printfln("Making folder %s...", name)
	if err := os.MkdirAll(name, 0777); err != nil {
		pterm.Fatal.Println("Unable to create server folder:", err.Error())
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		pterm.Fatal.Println("Error getting absolute path:", err.Error())
	}
	return abs
}

// setupMcdr checks the python toolchain, installs MCDR when missing and
// initializes its skeleton inside dir.
func setupMcdr(dir string) *mcdr.Manager {
	python, err := util.PythonCommand()
	if err != nil {
		pterm.Fatal.Println(err.Error())
	}
	if !util.CommandExists(python) {
		pterm.Fatal.Printfln("System can't find %s", python)
	}

	manager := mcdr.New(dir, python)
	if err := manager.EnsureInstalled(); err != nil {
		pterm.Fatal.Println("Error installing MCDReforged:", err.Error())
	}
	pterm.Info.Println("Initializing MCDR environment")
	if err := manager.Init(); err != nil {
		pterm.Fatal.Println("Error initializing MCDR:", err.Error())
	}
	return manager
}

func setOwner(manager *mcdr.Manager) {
	nickname := ownerName
	if nickname == "" && !auto {
		nickname, _ = pterm.DefaultInteractiveTextInput.
			WithDefaultText("Set the nickname of the server owner? [Skip]").
			Show()
		nickname = strings.TrimSpace(nickname)
	}
	if nickname == "" {
		return
	}
	pterm.Info.Printfln("Nickname to set: %s", nickname)
	if err := manager.SetOwner(nickname); err != nil {
		pterm.Fatal.Println("Error setting owner:", err.Error())
	}
}

// startCommand builds the java launch line for the acquired artifact, or
// defers to the loader's own run script when there is no flat jar.
func startCommand(descriptor structs.Descriptor) string {
	if descriptor.ExternalLauncher {
		return descriptor.LaunchHint
	}
	return fmt.Sprintf("java -Xms1G -Xmx%dM -jar %s nogui", memoryMb, descriptor.StartJar())
}

// hasEula reports whether the Minecraft version ships an eula.txt at all;
// releases before 1.7.10 predate it.
func hasEula(mcVersion string) bool {
	if mcVersion == "" {
		return true
	}
	installed, err := semVer.NewVersion(mcVersion)
	if err != nil {
		return true
	}
	return installed.GreaterThanOrEqual(semVer.Must(semVer.NewVersion("1.7.10")))
}

// firstRun optionally boots the server once so it writes its config files,
// then flips the EULA flag to true.
func firstRun(serverDir, installDir string, manager *mcdr.Manager, descriptor structs.Descriptor) {
	if !hasEula(descriptor.McVersion) {
		pterm.Warning.Println("Minecraft version too old, EULA does not exist")
		return
	}
	if !auto {
		cont := util.ConfirmYN("Do you want to start the server and set EULA=true?", false, pterm.Info.MessageStyle)
		if !cont {
			return
		}
	}

	pterm.Info.Println("Starting the server for the first time, may take some time...")
	if manager != nil {
		if err := manager.SetConsoleThread(true); err != nil {
			pterm.Fatal.Println("Error patching MCDR config:", err.Error())
		}
	}

	var err error
	if runtime.GOOS == "windows" {
		err = util.RunCommand(serverDir, "cmd", "/C", util.StartScript())
	} else {
		err = util.RunCommand(serverDir, util.StartScript())
	}
	if err != nil {
		pterm.Fatal.Println("First server start failed:", err.Error())
	}
	pterm.Info.Println("First time server start complete")

	if manager != nil {
		if err := manager.SetConsoleThread(false); err != nil {
			pterm.Fatal.Println("Error patching MCDR config:", err.Error())
		}
	}

	if err := patch.Apply(patch.Eula(filepath.Join(installDir, "eula.txt"), true)); err != nil {
		pterm.Fatal.Println("Error accepting EULA:", err.Error())
	}
	pterm.Success.Println("EULA set to true")
}
