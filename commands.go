package main

import (
	"context"
	"fmt"

	"image-board/internal/identity"

	"github.com/spf13/cobra"
)

// 维护命令以控制台管理员身份运行，走与 HTTP 相同的权限判定

var promoteCmd = &cobra.Command{
	Use:   "promote <username>",
	Short: "Grant administrator privileges to a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newApp()
		if err != nil {
			return err
		}
		defer rt.Close()

		user, err := rt.app.Modules.User.Service.Promote(identity.Console(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✅ 用户 %s (id=%d) 已设为管理员\n", user.Name, user.ID)
		return nil
	},
}

var recreateVersionsCmd = &cobra.Command{
	Use:   "recreate-versions",
	Short: "Regenerate the deliver version of every image",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newApp()
		if err != nil {
			return err
		}
		defer rt.Close()

		result, err := rt.app.Modules.Image.Service.RecreateVersions(context.Background(), identity.Console())
		if err != nil {
			return err
		}
		fmt.Printf("✅ 展示版本已重新生成: 共 %d，成功 %d，失败 %d\n", result.Total, result.Succeeded, result.Failed)
		return nil
	},
}

var updateExifCmd = &cobra.Command{
	Use:   "update-exif",
	Short: "Re-read EXIF metadata for every image",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newApp()
		if err != nil {
			return err
		}
		defer rt.Close()

		result, err := rt.app.Modules.Image.Service.UpdateExif(context.Background(), identity.Console())
		if err != nil {
			return err
		}
		fmt.Printf("✅ EXIF 已更新: 共 %d，成功 %d，失败 %d\n", result.Total, result.Succeeded, result.Failed)
		return nil
	},
}
