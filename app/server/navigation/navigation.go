package navigation

import "time"

// Route 是站点导航面里的一个命名路由
type Route struct {
	Name          string `json:"name"`          // 路由名称
	Path          string `json:"path"`          // 路径
	RequiresAuth  bool   `json:"requiresAuth"`  // 需要已登录会话
	RequiresAdmin bool   `json:"requiresAdmin"` // 需要管理员会话
}

const (
	// SignInPath 是未授权访问的重定向目标
	SignInPath = "/signin"

	// NotFoundPath 是兜底路由
	NotFoundPath = "/*"
)

const (
	// ScrollBehavior 是锚点滚动的方式，前端直接透传给 scrollIntoView
	ScrollBehavior = "smooth"

	// ScrollDelay 是跳转页面后滚动到锚点前的渲染等待时间
	ScrollDelay = 100 * time.Millisecond
)

// routes 是固定的导航面，属于配置而不是业务逻辑。
// 受保护路由由会话状态把关：未满足条件时重定向到登录页。
var routes = []Route{
	{Name: "home", Path: "/"},
	{Name: "about", Path: "/about"},
	{Name: "services", Path: "/services"},
	{Name: "events", Path: "/events"},
	{Name: "models", Path: "/models"},
	{Name: "products", Path: "/products"},
	{Name: "instagram", Path: "/instagram"},
	{Name: "gallery", Path: "/gallery"},
	{Name: "blog", Path: "/blog"},
	{Name: "contact", Path: "/contact"},
	{Name: "signin", Path: "/signin"},
	{Name: "signup", Path: "/signup"},
	{Name: "admin", Path: "/admin", RequiresAuth: true, RequiresAdmin: true},
	{Name: "user-settings", Path: "/user/settings", RequiresAuth: true},
}

// Routes 返回导航面的副本
func Routes() []Route {
	result := make([]Route, len(routes))
	copy(result, routes)
	return result
}

// RouteFor 按路径查找路由，未命中表示走兜底路由
func RouteFor(path string) (Route, bool) {
	for _, route := range routes {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}

// sectionPages 把首页各区块的锚点映射到承载它们的页面
var sectionPages = map[string]string{
	"hero":     "/",
	"about":    "/",
	"services": "/",
	"events":   "/",
	"models":   "/",
	"products": "/",
	"contact":  "/",
}

// TargetKind 表示锚点解析的结果类型
type TargetKind string

const (
	TargetScroll   TargetKind = "scroll"   // 已在目标页面，原地平滑滚动到锚点
	TargetNavigate TargetKind = "navigate" // 先跳转页面，再滚动到锚点
)

type Target struct {
	Kind      TargetKind `json:"kind"`
	Path      string     `json:"path"`
	SectionID string     `json:"sectionId"`
	Behavior  string     `json:"behavior"`
	DelayMs   int64      `json:"delayMs"`
}

// ResolveSection 解析一次区块跳转：当前已在目标页面时原地滚动，
// 否则携带锚点跳转到目标页面，并在跳转后等待一段渲染时间再滚动。
// 未知锚点返回 false 。
func ResolveSection(sectionID, currentPath string) (Target, bool) {
	page, ok := sectionPages[sectionID]
	if !ok {
		return Target{}, false
	}

	target := Target{
		Kind:      TargetScroll,
		Path:      page,
		SectionID: sectionID,
		Behavior:  ScrollBehavior,
	}
	if currentPath != page {
		target.Kind = TargetNavigate
		target.DelayMs = ScrollDelay.Milliseconds()
	}

	return target, true
}
