package formval

func init() {
	RegisterFileRule(ruleRequired, compileFileRequired)
	RegisterFileRule("ext", compileExt)
	RegisterFileRule("extAllowed", compileExtAllowed)
	RegisterFileRule("extNotAllowed", compileExtNotAllowed)
	RegisterFileRule("sizeEqual", sizeRule(func(size, p float64) bool { return size == p }))
	RegisterFileRule("sizeNotEqual", sizeRule(func(size, p float64) bool { return size != p }))
	RegisterFileRule("sizeGt", sizeRule(func(size, p float64) bool { return size > p }))
	RegisterFileRule("sizeGte", sizeRule(func(size, p float64) bool { return size >= p }))
	RegisterFileRule("sizeLt", sizeRule(func(size, p float64) bool { return size < p }))
	RegisterFileRule("sizeLte", sizeRule(func(size, p float64) bool { return size <= p }))
	RegisterFileRule("type", compileType)
	RegisterFileRule("typeIn", compileTypeIn)
	RegisterFileRule("typeNotIn", compileTypeNotIn)
}

// Ext declares that the file's extension must equal the given one.
func Ext(ext, message string) RuleDef {
	return RuleDef{Name: "ext", Args: []any{ext, message}}
}

// ExtAllowed declares that the file's extension must appear in the list.
func ExtAllowed(exts []string, message string) RuleDef {
	return RuleDef{Name: "extAllowed", Args: []any{exts, message}}
}

// ExtNotAllowed declares that the file's extension must not appear in the list.
func ExtNotAllowed(exts []string, message string) RuleDef {
	return RuleDef{Name: "extNotAllowed", Args: []any{exts, message}}
}

// SizeEqual, SizeNotEqual, SizeGt, SizeGte, SizeLt, SizeLte declare
// comparisons on the file size in bytes.
func SizeEqual(size int64, message string) RuleDef {
	return RuleDef{Name: "sizeEqual", Args: []any{size, message}}
}

func SizeNotEqual(size int64, message string) RuleDef {
	return RuleDef{Name: "sizeNotEqual", Args: []any{size, message}}
}

func SizeGt(size int64, message string) RuleDef {
	return RuleDef{Name: "sizeGt", Args: []any{size, message}}
}

func SizeGte(size int64, message string) RuleDef {
	return RuleDef{Name: "sizeGte", Args: []any{size, message}}
}

func SizeLt(size int64, message string) RuleDef {
	return RuleDef{Name: "sizeLt", Args: []any{size, message}}
}

func SizeLte(size int64, message string) RuleDef {
	return RuleDef{Name: "sizeLte", Args: []any{size, message}}
}

// Type declares that the file's MIME type must equal the given one.
func Type(mimeType, message string) RuleDef {
	return RuleDef{Name: "type", Args: []any{mimeType, message}}
}

// TypeIn declares that the file's MIME type must appear in the list.
func TypeIn(mimeTypes []string, message string) RuleDef {
	return RuleDef{Name: "typeIn", Args: []any{mimeTypes, message}}
}

// TypeNotIn declares that the file's MIME type must not appear in the list.
func TypeNotIn(mimeTypes []string, message string) RuleDef {
	return RuleDef{Name: "typeNotIn", Args: []any{mimeTypes, message}}
}

func compileFileRequired(params []any) (func(File, Data) bool, error) {
	if len(params) != 0 {
		return nil, ErrInvalidParams
	}
	return func(f File, _ Data) bool {
		return f.Name != ""
	}, nil
}

func compileExt(params []any) (func(File, Data) bool, error) {
	ext, err := oneString(params)
	if err != nil {
		return nil, err
	}
	return func(f File, _ Data) bool {
		return f.Ext() == ext
	}, nil
}

func compileExtAllowed(params []any) (func(File, Data) bool, error) {
	list, err := oneList(params)
	if err != nil {
		return nil, err
	}
	return func(f File, _ Data) bool {
		return contains(list, f.Ext())
	}, nil
}

func compileExtNotAllowed(params []any) (func(File, Data) bool, error) {
	check, err := compileExtAllowed(params)
	if err != nil {
		return nil, err
	}
	return func(f File, d Data) bool {
		return !check(f, d)
	}, nil
}

func sizeRule(cmp func(size, p float64) bool) FileCompiler {
	return func(params []any) (func(File, Data) bool, error) {
		threshold, err := oneNumber(params)
		if err != nil {
			return nil, err
		}
		return func(f File, _ Data) bool {
			return cmp(float64(f.Size), threshold)
		}, nil
	}
}

func compileType(params []any) (func(File, Data) bool, error) {
	mimeType, err := oneString(params)
	if err != nil {
		return nil, err
	}
	return func(f File, _ Data) bool {
		return f.Type == mimeType
	}, nil
}

func compileTypeIn(params []any) (func(File, Data) bool, error) {
	list, err := oneList(params)
	if err != nil {
		return nil, err
	}
	return func(f File, _ Data) bool {
		return contains(list, f.Type)
	}, nil
}

func compileTypeNotIn(params []any) (func(File, Data) bool, error) {
	check, err := compileTypeIn(params)
	if err != nil {
		return nil, err
	}
	return func(f File, d Data) bool {
		return !check(f, d)
	}, nil
}
