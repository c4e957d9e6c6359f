// Package news holds the aggregation core: the category registry, URL
// deduplication, keyword categorization, and the per-category article
// store. Everything here is plain per-run state owned by one pipeline
// invocation.
package news

// Category binds a display name to the keywords that qualify an article
// for it. Keywords are matched case-insensitively as plain substrings and
// mix Chinese and English.
type Category struct {
	Name     string
	Keywords []string
}

// Registry is the ordered category list for one run. Declared order
// matters: snapshot ties are broken by position.
type Registry []Category

// DefaultRegistry returns the built-in category set.
func DefaultRegistry() Registry {
	return Registry{
		{Name: "科技", Keywords: []string{"technology", "tech", "科技", "数码", "互联网", "软件", "硬件", "创新", "startup", "digital", "internet"}},
		{Name: "金融", Keywords: []string{"finance", "financial", "金融", "股市", "银行", "投资", "经济", "market", "economy", "stock", "banking"}},
		{Name: "AI", Keywords: []string{"ai", "artificial intelligence", "人工智能", "机器学习", "深度学习", "算法", "ml", "neural", "chatgpt", "大模型"}},
		{Name: "教育", Keywords: []string{"education", "educational", "教育", "学校", "大学", "学习", "培训", "edu", "university", "school"}},
		{Name: "医疗", Keywords: []string{"health", "medical", "医疗", "健康", "医院", "疾病", "药物", "medicine", "hospital", "doctor"}},
		{Name: "环保", Keywords: []string{"environment", "climate", "环保", "环境", "气候变化", "可持续", "green", "sustainability", "carbon", "eco"}},
		{Name: "汽车", Keywords: []string{"car", "auto", "汽车", "电动车", "电动汽车", "tesla", "ev", "vehicle"}},
		{Name: "游戏", Keywords: []string{"game", "gaming", "游戏", "电竞", "电子竞技", "playstation", "xbox"}},
		{Name: "区块链", Keywords: []string{"blockchain", "crypto", "区块链", "加密货币", "比特币", "ethereum", "nft"}},
	}
}

// Names returns the category names in declared order.
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, c := range r {
		names[i] = c.Name
	}
	return names
}
