package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "成功",
	ErrUnknown:         "未知错误",
	ErrBind:            "请求参数绑定错误",
	ErrValidation:      "请求参数验证错误",
	ErrTokenInvalid:    "无效的认证令牌",
	ErrTooManyRequests: "请求频率过高",

	// 管理员相关错误码
	ErrAdminNotFound:     "管理员不存在",
	ErrAdminAlreadyExist: "管理员已存在",
	ErrUsernameIncorrect: "用户名错误",
	ErrPasswordIncorrect: "密码错误",

	// 留言相关错误码
	ErrContactNotFound: "留言不存在",
	ErrContactInvalid:  "姓名、邮箱和留言内容为必填项",

	// 产品相关错误码
	ErrProductNotFound: "产品不存在",
	ErrProductInvalid:  "产品名称和价格为必填项",

	// 相册相关错误码
	ErrGalleryNotFound: "相册条目不存在",

	// 图片上传相关错误码
	ErrImageRequired: "缺少图片文件",
	ErrImageFormat:   "图片格式不支持，仅支持 jpg/jpeg/png",
	ErrUploadFailed:  "图片上传失败",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 管理员相关错误码
	ErrAdminNotFound:     StatusNotFound,
	ErrAdminAlreadyExist: StatusBadRequest,
	ErrUsernameIncorrect: StatusUnauthorized,
	ErrPasswordIncorrect: StatusUnauthorized,

	// 留言相关错误码
	ErrContactNotFound: StatusNotFound,
	ErrContactInvalid:  StatusBadRequest,

	// 产品相关错误码
	ErrProductNotFound: StatusNotFound,
	ErrProductInvalid:  StatusBadRequest,

	// 相册相关错误码
	ErrGalleryNotFound: StatusNotFound,

	// 图片上传相关错误码
	ErrImageRequired: StatusBadRequest,
	ErrImageFormat:   StatusBadRequest,
	ErrUploadFailed:  StatusInternalServerError,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
