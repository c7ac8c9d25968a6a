package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/LCDatulya/costlibrary-to-sql/internal/config"
	"github.com/LCDatulya/costlibrary-to-sql/internal/ingester"
	"github.com/LCDatulya/costlibrary-to-sql/internal/logging"
	"github.com/LCDatulya/costlibrary-to-sql/internal/server"
	"github.com/LCDatulya/costlibrary-to-sql/internal/store"
)

var (
	port       = flag.Int("port", 0, "服务端口 (覆盖配置文件)")
	devMode    = flag.Bool("dev", false, "开发模式")
	dataDir    = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	importFile = flag.String("file", "", "无界面导入：待导入的成本库工作簿路径")
	dbPath     = flag.String("db", "", "无界面导入：SQLite 数据库路径 (默认数据目录下)")
	discipline = flag.String("discipline", "", "无界面导入：单字母专业代码 (e/f/d/m/h/a)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  CostLibrary - 成本库数据导入工具")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	// 指定了导入文件时走无界面导入，不启动服务
	if *importFile != "" {
		runHeadlessImport(cfg)
		return
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("创建数据目录失败: %v", err)
	} else {
		fmt.Printf("数据目录: %s\n", dir)
	}

	channels := logging.ConsoleChannels()
	srv := server.NewServer(cfg, channels)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("服务地址: http://localhost%s\n", addr)

	if err := srv.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}

// runHeadlessImport 无界面执行一次导入后退出
func runHeadlessImport(cfg *config.AppConfig) {
	disciplineID, ok := config.DisciplineID(*discipline)
	if !ok {
		log.Fatalf("无效的专业代码: %q (可选: e/f/d/m/h/a)", *discipline)
	}

	path := *dbPath
	if path == "" {
		dir, err := config.EnsureDataDir(cfg)
		if err != nil {
			log.Fatalf("创建数据目录失败: %v", err)
		}
		path = filepath.Join(dir, cfg.Data.DBFile)
	}

	channels := logging.ConsoleChannels()

	st, err := store.New(path, channels.SQL)
	if err != nil {
		log.Fatalf("打开数据库失败: %v", err)
	}
	defer func() { _ = st.Close() }()

	coord := ingester.NewCoordinator(st, channels, cfg.Excel.HeaderRow)
	ch := coord.Import(ingester.Options{
		FilePath:         *importFile,
		OriginalFilename: filepath.Base(*importFile),
		DisciplineID:     disciplineID,
	})

	var report *ingester.Report
	for evt := range ch {
		switch evt.Type {
		case "error":
			log.Printf("导入失败: %s", evt.Message)
			os.Exit(1)
		case "done":
			if r, ok := evt.Data.(*ingester.Report); ok {
				report = r
			}
		default:
			fmt.Println(evt.Message)
		}
	}

	if report != nil {
		fmt.Printf("导入完成: %d 个 Sheet (%d 跳过), %d 个分类, %d 个条目, 丢弃 %d 行, 用时 %s\n",
			report.TotalSheets, report.SkippedSheets,
			report.CategoryCount, report.ItemCount, report.DroppedRows,
			report.Duration.Round(time.Millisecond))
	}
	fmt.Println("数据库:", path)
}
