package constitution

import "errors"

// ErrEmptyText is returned by the estimate handler when the request carries
// no symptom text. Short-but-present text is not an error; it resolves to the
// insufficient-information sentinel instead.
var ErrEmptyText = errors.New("text 字段不能为空")
