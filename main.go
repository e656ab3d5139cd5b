package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"image-board/internal/config"
	"image-board/internal/consts"
	"image-board/internal/db"
	"image-board/internal/di"
	"image-board/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configDir string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runtimeApp 命令共用的启动结果，调用方负责 Close
type runtimeApp struct {
	cfg *config.Config
	db  *gorm.DB
	app *di.Application
}

func (r *runtimeApp) Close() {
	if r.app != nil && r.app.Redis != nil {
		_ = r.app.Redis.Close()
	}
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newApp 读取配置、连接数据库并组装全部模块
func newApp() (*runtimeApp, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	if cfg.Storage.Provider == "" || cfg.Storage.Provider == "local" {
		if err := checkSecurePath(cfg.Storage.Path); err != nil {
			return nil, err
		}
	}

	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	provider, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("初始化存储失败: %w", err)
	}

	app, err := di.InitializeApplication(cfg, gdb, provider)
	if err != nil {
		return nil, fmt.Errorf("初始化应用失败: %w", err)
	}
	if err := app.AppService.InitializeSettings(); err != nil {
		return nil, fmt.Errorf("初始化配置项失败: %w", err)
	}

	return &runtimeApp{cfg: cfg, db: gdb, app: app}, nil
}

var rootCmd = &cobra.Command{
	Use:   "image-board",
	Short: "Image sharing board",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newApp()
		if err != nil {
			return err
		}
		defer rt.Close()

		r := newEngine(rt)
		printWelcomeMessage(rt.cfg)

		// 停机配置
		srv := &http.Server{
			Addr:    ":" + rt.cfg.Server.Port,
			Handler: r,
		}

		go func() {
			log.Printf("🚀 服务启动成功，运行在 :%s\n", rt.cfg.Server.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("❌ 服务启动失败: %s\n", err)
			}
		}()

		// 等待中断信号关闭服务器（设置 5 秒的超时时间）
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 正在关闭服务...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("服务强制关闭: %w", err)
		}
		log.Println("✅ 服务已退出")
		return nil
	},
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Export registered routes to routes.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newApp()
		if err != nil {
			return err
		}
		defer rt.Close()

		return exportAPI(newEngine(rt), "routes.json")
	},
}

func newEngine(rt *runtimeApp) *gin.Engine {
	gin.SetMode(rt.cfg.Server.Mode)

	r := gin.Default()
	if err := r.SetTrustedProxies(splitTrustedProxyList(rt.cfg.Server.TrustedProxies)); err != nil {
		log.Printf("⚠️ 可信代理配置无效，已忽略: %v", err)
		_ = r.SetTrustedProxies(nil)
	}
	rt.app.Router.Init(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	return r
}

// splitTrustedProxyList 支持逗号、分号与空白分隔，空配置表示不信任任何代理
func splitTrustedProxyList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func printWelcomeMessage(cfg *config.Config) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️  存储     : %s\n", cfg.Storage.Provider)
	fmt.Printf(" │   🔥  服务端口 : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine, filename string) error {
	routes := r.Routes()

	// 简单的结构体，只留关键信息
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, file, 0644); err != nil {
		return err
	}

	log.Printf("✅ 路由已成功导出到 %s", filename)
	return nil
}

// checkSecurePath 本地图片目录会被直接对外提供，不能指向项目根目录或源码目录
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("❌ 路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("❌ 无法获取当前工作目录: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("❌ 安全配置错误: 图片目录 '%s' 不能设置为项目根目录", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err == nil && !strings.HasPrefix(rel, "..") {
		relSlash := filepath.ToSlash(rel)

		// 只有位于这些目录下的路径才被允许作为图片目录
		allowedDirs := []string{
			"uploads",
			"public",
			"static",
			"tmp",
		}

		firstComponent := strings.Split(relSlash, "/")[0]
		for _, allowed := range allowedDirs {
			if strings.EqualFold(firstComponent, allowed) {
				return nil
			}
		}
		return fmt.Errorf("❌ 安全配置错误: 图片目录 '%s' (解析为: '%s') 必须位于项目根目录下的安全子目录中 (如 %v)", path, relSlash, allowedDirs)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "配置目录（默认 ./config）")
	rootCmd.AddCommand(serveCmd, routesCmd, promoteCmd, recreateVersionsCmd, updateExifCmd)
}
