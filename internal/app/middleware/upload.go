package middleware

import (
	"path/filepath"
	"strings"

	"natura-http-service/internal/domain/services/container"
	"natura-http-service/internal/error/code"
	"natura-http-service/internal/error/response"
	"natura-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// 上传结果在请求上下文中的键
const (
	ImageURLKey      = "image_url"
	ImagePublicIDKey = "image_public_id"
)

// 接受的图片扩展名
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ImageUpload 图片上传适配器：拦截请求中名为 image 的文件，
// 上传到指定的外部存储文件夹，并在控制器执行前把URL和删除句柄
// 写入请求上下文。没有携带文件时直接放行，由控制器决定是否必填。
func ImageUpload(c *container.ServiceContainer, folder string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fileHeader, err := ctx.FormFile("image")
		if err != nil {
			// 没有文件，交给控制器处理
			ctx.Next()
			return
		}

		// 校验图片格式
		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !allowedImageExts[ext] {
			response.Fail(ctx, code.ErrImageFormat, nil)
			ctx.Abort()
			return
		}

		storage := c.GetStorageService()
		if storage == nil {
			response.FailWithMessage(ctx, code.ErrUploadFailed, "图片存储服务不可用", nil)
			ctx.Abort()
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			logger.Error("读取上传文件失败: %v", err)
			response.Fail(ctx, code.ErrUploadFailed, nil)
			ctx.Abort()
			return
		}
		defer file.Close()

		// 上传完成后才允许后续的数据库写入
		uploaded, err := storage.UploadImage(ctx.Request.Context(), file, fileHeader.Filename, folder)
		if err != nil {
			logger.Error("上传图片到外部存储失败: %v", err)
			response.Fail(ctx, code.ErrUploadFailed, nil)
			ctx.Abort()
			return
		}

		ctx.Set(ImageURLKey, uploaded.URL)
		ctx.Set(ImagePublicIDKey, uploaded.PublicID)
		ctx.Next()
	}
}
