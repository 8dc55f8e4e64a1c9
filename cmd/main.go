package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"pdfreducer/internal/domain/entities"
	"pdfreducer/internal/domain/repositories"
	"pdfreducer/internal/infrastructure/compressors"
	"pdfreducer/internal/infrastructure/config"
	"pdfreducer/internal/infrastructure/engines"
	"pdfreducer/internal/infrastructure/logging"
	infraRepos "pdfreducer/internal/infrastructure/repositories"
	"pdfreducer/internal/interface/controllers"
	"pdfreducer/internal/presentation/tui"
	usecases "pdfreducer/internal/usecase"
)

// cliFlags параметры командной строки одноразового режима
type cliFlags struct {
	input           string
	output          string
	profile         string
	dpi             int
	monoDPI         int
	aggressive      bool
	fallbackProfile string
	fallbackDPI     int
	minGain         float64
	engine          string
	configPath      string
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}
	flag.StringVar(&flags.input, "input", "", "PDF файл или директория для уменьшения (без флага запускается TUI)")
	flag.StringVar(&flags.output, "output", "", "файл или директория назначения (по умолчанию <имя>_reduced.pdf)")
	flag.StringVar(&flags.profile, "profile", "/ebook", "профиль первого прохода: /screen, /ebook, /printer, /prepress")
	flag.IntVar(&flags.dpi, "dpi", 150, "разрешение цветных и серых изображений")
	flag.IntVar(&flags.monoDPI, "mono-dpi", 300, "разрешение монохромных изображений")
	flag.BoolVar(&flags.aggressive, "aggressive", true, "разрешить агрессивный второй проход при малом выигрыше")
	flag.StringVar(&flags.fallbackProfile, "fallback-profile", "/screen", "профиль агрессивного прохода")
	flag.IntVar(&flags.fallbackDPI, "fallback-dpi", 100, "разрешение цвет/серый для агрессивного прохода")
	flag.Float64Var(&flags.minGain, "min-gain", entities.DefaultMinGainPercent, "порог выигрыша первого прохода в процентах")
	flag.StringVar(&flags.engine, "engine", "", "движок: ghostscript, pdfcpu или unipdf (по умолчанию из конфигурации)")
	flag.StringVar(&flags.configPath, "config", "config.yaml", "путь к файлу конфигурации")
	flag.Parse()
	return flags
}

// buildReductionOptions строит параметры уменьшения из флагов командной строки
func buildReductionOptions(flags *cliFlags) (*entities.ReductionOptions, error) {
	options := entities.NewDefaultReductionOptions()

	profile, err := entities.ParseProfile(flags.profile)
	if err != nil {
		return nil, err
	}
	options.Primary.Profile = profile
	options.Primary.ColorDPI = flags.dpi
	options.Primary.GrayDPI = flags.dpi
	options.Primary.MonoDPI = flags.monoDPI

	fallbackProfile, err := entities.ParseProfile(flags.fallbackProfile)
	if err != nil {
		return nil, err
	}
	options.Fallback.Profile = fallbackProfile
	options.Fallback.ColorDPI = flags.fallbackDPI
	options.Fallback.GrayDPI = flags.fallbackDPI
	options.Fallback.MonoDPI = flags.monoDPI

	options.Aggressive = flags.aggressive
	options.MinGainPercent = flags.minGain

	if err := options.Validate(); err != nil {
		return nil, err
	}

	return options, nil
}

// selectEngine выбирает движок уменьшения на основе конфигурации.
// Неизвестное имя движка — ошибка, а не молчаливый выбор значения по
// умолчанию
func selectEngine(name string, appConfig *entities.Config) (repositories.PDFEngine, error) {
	switch name {
	case "", "ghostscript":
		timeout := time.Duration(appConfig.Processing.TimeoutSeconds) * time.Second
		return engines.NewGhostscriptEngine(timeout), nil
	case "pdfcpu":
		return engines.NewPDFCPUEngine(), nil
	case "unipdf":
		return engines.NewUniPDFEngine(appConfig.Compression.UniPDFLicenseKey), nil
	default:
		return nil, fmt.Errorf("неизвестный движок: %q (допустимы ghostscript, pdfcpu, unipdf)", name)
	}
}

func main() {
	flags := parseFlags()

	// Загрузка конфигурации
	configRepo := config.NewRepository()
	appConfig, err := configRepo.Load(flags.configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	engineName := appConfig.Compression.Engine
	if flags.engine != "" {
		engineName = flags.engine
	}

	// Инициализация репозиториев и движка
	fileRepo := infraRepos.NewFileSystemRepository()
	engine, err := selectEngine(engineName, appConfig)
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}
	reduceUseCase := usecases.NewReducePDFUseCase(engine, fileRepo)

	// Одноразовый режим: флаг -input задан, TUI не поднимается
	if flags.input != "" {
		runCLI(flags, reduceUseCase, fileRepo)
		return
	}

	runTUI(appConfig, reduceUseCase, fileRepo)
}

// runCLI выполняет одно уменьшение и печатает итог
func runCLI(flags *cliFlags, reduceUseCase *usecases.ReducePDFUseCase, fileRepo repositories.FileRepository) {
	options, err := buildReductionOptions(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка параметров: %v\n", err)
		os.Exit(2)
	}

	reduceDirUseCase := usecases.NewReduceDirectoryUseCase(reduceUseCase, fileRepo)
	controller := controllers.NewCLIController(reduceUseCase, reduceDirUseCase)

	info, err := os.Stat(flags.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}

	if info.IsDir() {
		err = controller.HandleDirectory(flags.input, flags.output, options)
	} else {
		err = controller.HandleSingleFile(flags.input, flags.output, options)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

// newTUILogger оборачивает файловый логгер адаптером TUI. Отключенный
// файловый логгер (nil *FileLogger) не должен попадать в интерфейс:
// типизированный nil проходит проверку != nil внутри адаптера
func newTUILogger(fileLogger *logging.FileLogger, manager *tui.Manager) repositories.Logger {
	var base repositories.Logger
	if fileLogger != nil {
		base = fileLogger
	}
	return tui.NewUILogger(base, manager)
}

// runTUI запускает интерактивный режим с пакетной обработкой директории
func runTUI(appConfig *entities.Config, reduceUseCase *usecases.ReducePDFUseCase, fileRepo repositories.FileRepository) {
	// Инициализация базового логгера (в файл)
	fileLogger, err := logging.NewFileLogger(
		appConfig.Output.LogFileName,
		appConfig.Output.LogLevel,
		appConfig.Output.LogMaxSizeMB,
		appConfig.Output.LogToFile,
	)
	if err != nil {
		log.Printf("Предупреждение: не удалось инициализировать логгер: %v", err)
	}
	if fileLogger != nil {
		defer fileLogger.Close()
	}

	// Инициализация TUI
	tuiManager := tui.NewManager()
	tuiManager.Initialize()

	// Оборачиваем логгер адаптером, чтобы видеть логи в TUI
	logger := newTUILogger(fileLogger, tuiManager)

	reductionConfigRepo := infraRepos.NewConfigRepository()

	// Инициализация use cases
	processUseCase := usecases.NewProcessPDFsUseCase(
		reduceUseCase,
		fileRepo,
		reductionConfigRepo,
		logger,
	)

	imageCompressor := compressors.NewImageCompressor()
	imageUseCase := usecases.NewCompressImageUseCase(logger, imageCompressor)

	// Создаем объединенный процессор для всех типов файлов
	allFilesUseCase := usecases.NewProcessAllFilesUseCase(processUseCase, imageUseCase, logger)

	// Подключаем репортер прогресса к TUI
	processUseCase.SetProgressReporter(func(s entities.ProcessingStatus) {
		tuiManager.SendStatusUpdate(s)
	})

	// Создание процессора для обработки команд
	processor := NewApplicationProcessor(
		processUseCase,
		allFilesUseCase,
		appConfig,
		tuiManager,
		logger,
	)
	defer processor.Shutdown()

	// Привязываем запуск обработки к TUI
	tuiManager.SetOnStartProcessing(func() {
		// Получаем актуальную конфигурацию из TUI
		processor.config = tuiManager.GetConfig()
		go processor.StartProcessing()
	})

	// Автозапуск, если включен в конфигурации
	if appConfig.Compression.AutoStart {
		go processor.StartProcessing()
	}

	// Запуск TUI
	if err := tuiManager.Run(); err != nil {
		log.Fatalf("Ошибка запуска TUI: %v", err)
	}

	// Cleanup при выходе
	tuiManager.Cleanup()
}
