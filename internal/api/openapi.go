package api

import (
	"github.com/lianzhou/tizhi/internal/config"
	"github.com/lianzhou/tizhi/pkg/openapi"
)

// buildSpec generates the OpenAPI document describing the API surface. Paths
// are module-relative; the server entry records the mounted base path.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"MetaInfo": {
			Type:        "object",
			Description: "可选的请求元信息，不影响判定结果",
			Properties: map[string]*openapi.Schema{
				"age":    {Type: "integer"},
				"sex":    {Type: "string"},
				"region": {Type: "string"},
				"notes":  {Type: "string"},
			},
		},
		"EstimateRequest": {
			Type:     "object",
			Required: []string{"text"},
			Properties: map[string]*openapi.Schema{
				"text": {
					Type:        "string",
					Description: "症状与生活习惯的自由文本描述",
					Example:     "我总是怕冷，手脚冰凉，喜欢喝热水",
				},
				"meta": openapi.SchemaRef("MetaInfo"),
			},
		},
		"KeywordMatch": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"keyword": {Type: "string"},
				"weight":  {Type: "number"},
				"span":    {Type: "string", Description: "关键词在输入文本中的上下文片段"},
			},
		},
		"EvidenceItem": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"type":    {Type: "string"},
				"score":   {Type: "number"},
				"matched": {Type: "array", Items: openapi.SchemaRef("KeywordMatch")},
			},
		},
		"Recommendation": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"lifestyle":         {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"diet":              {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"when_to_seek_help": {Type: "array", Items: &openapi.Schema{Type: "string"}},
			},
		},
		"EstimateResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"primary_type":         {Type: "string", Description: "主要体质类型，信息不足时为哨兵值"},
				"secondary_types":      {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"confidence":           {Type: "number"},
				"evidence":             {Type: "array", Items: openapi.SchemaRef("EvidenceItem")},
				"recommendations":      openapi.SchemaRef("Recommendation"),
				"questions_to_clarify": {Type: "array", Items: &openapi.Schema{Type: "string"}},
				"disclaimer":           {Type: "string"},
			},
		},
	})

	spec.Paths["/constitution/estimate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "体质判定",
			Description: "对自由文本症状描述进行规则匹配，返回主要与次要体质类型、证据与调养建议。",
			Tags:        []string{"constitution"},
			RequestBody: openapi.RequestBodyJSON("EstimateRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("判定结果", "EstimateResponse"),
				400: openapi.ResponseRef("BadRequest"),
				401: openapi.ResponseRef("Unauthorized"),
				413: openapi.ResponseRef("PayloadTooLarge"),
				429: openapi.ResponseRef("RateLimited"),
				504: openapi.ResponseRef("Timeout"),
			},
		},
	}

	return spec
}
