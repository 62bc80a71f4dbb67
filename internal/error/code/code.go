package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusCreated - 201: 创建成功.
	StatusCreated = 201
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 管理员相关错误码 (101xxx).
const (
	// ErrAdminNotFound - 404: 管理员不存在.
	ErrAdminNotFound int = iota + 101000
	// ErrAdminAlreadyExist - 400: 管理员已存在.
	ErrAdminAlreadyExist
	// ErrUsernameIncorrect - 401: 用户名错误.
	ErrUsernameIncorrect
	// ErrPasswordIncorrect - 401: 密码错误.
	ErrPasswordIncorrect
)

// 留言相关错误码 (102xxx).
const (
	// ErrContactNotFound - 404: 留言不存在.
	ErrContactNotFound int = iota + 102000
	// ErrContactInvalid - 400: 留言内容不完整.
	ErrContactInvalid
)

// 产品相关错误码 (103xxx).
const (
	// ErrProductNotFound - 404: 产品不存在.
	ErrProductNotFound int = iota + 103000
	// ErrProductInvalid - 400: 产品信息不完整.
	ErrProductInvalid
)

// 相册相关错误码 (104xxx).
const (
	// ErrGalleryNotFound - 404: 相册条目不存在.
	ErrGalleryNotFound int = iota + 104000
)

// 图片上传相关错误码 (105xxx).
const (
	// ErrImageRequired - 400: 缺少图片文件.
	ErrImageRequired int = iota + 105000
	// ErrImageFormat - 400: 图片格式不支持.
	ErrImageFormat
	// ErrUploadFailed - 500: 图片上传失败.
	ErrUploadFailed
)

// 数据库相关错误码 (106xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
