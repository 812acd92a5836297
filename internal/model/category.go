package model

const (
	SellingTypeUnit    = "unit"
	SellingTypePackage = "package"
)

type Category struct {
	BaseModel
	Name         string   `db:"name" json:"name"`
	SellingType  string   `db:"selling_type" json:"sellingType"`
	PackageSizes *string  `db:"package_sizes" json:"-"`
	Flavors      []Flavor `db:"-" json:"flavors,omitempty"`
}

// PackageSizeList decodes the stored package_sizes blob.
func (c *Category) PackageSizeList() []string {
	return DecodeStringList(c.PackageSizes)
}
