// Package xmlconfig parses the cache-manager XML dialect into plain
// configuration descriptors.
//
// The recognized document is a <cache-manager> element whose children are:
//
//	<cache-ref ref="..."/>
//	<cache-cluster expiration="..." allowClear="..." cacheCluster="..."/>
//	<cache name="..." address="..." expiration="..." allowClear="..."/>
//
// Parsing is fail-fast per element: the first missing required attribute
// aborts that element before any dependent parsing runs. Errors across
// elements are aggregated and any error rejects the whole document.
package xmlconfig

import (
	"io"

	"go.uber.org/zap"

	"elasticonf/application/registry"
	"elasticonf/domain/config"
	"elasticonf/domain/config/validators"
	"elasticonf/pkg/errors"
)

const (
	managerElementName      = "cache-manager"
	cacheClusterElementName = "cache-cluster"
	cacheRefElementName     = "cache-ref"
	cacheElementName        = "cache"
)

// Parser translates the XML dialect into a ManagerDefinition
type Parser struct {
	logger    *zap.Logger
	validator *validators.DefinitionValidator
}

// NewParser creates a parser
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{
		logger:    logger,
		validator: validators.NewDefinitionValidator(),
	}
}

// Parse reads one cache-manager document and produces its definition.
// The returned error is a *errors.ValidationErrors when the document is
// structurally sound but invalid.
func (p *Parser) Parse(r io.Reader) (*config.ManagerDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading configuration")
	}

	root, err := decodeTree(data)
	if err != nil {
		return nil, errors.NewValidationError("malformed XML document").WithCause(err)
	}

	if root.name != managerElementName {
		return nil, errors.NewValidationError("root element must be <"+managerElementName+">").
			At(root.name, root.line)
	}

	entries, validationErrors := p.parseEntries(root)
	if validationErrors.HasErrors() {
		return nil, validationErrors
	}

	def := config.NewManagerDefinition(entries)
	if err := p.validator.ValidateManager(def); err != nil {
		return nil, err
	}

	p.logger.Debug("parsed cache manager configuration",
		zap.Int("entries", len(def.Entries)),
	)
	return def, nil
}

// ParseAndRegister parses the document and registers the definition in the
// given registry scope. A definition already present under the manager id
// makes the second document a duplicate-declaration error.
func (p *Parser) ParseAndRegister(r io.Reader, reg *registry.Registry) (*config.ManagerDefinition, error) {
	def, err := p.Parse(r)
	if err != nil {
		return nil, err
	}
	if err := reg.RegisterManagerAt(def, managerElementName, 0); err != nil {
		return nil, err
	}
	return def, nil
}

// parseEntries walks the children of the manager element, dispatching by tag
func (p *Parser) parseEntries(root *element) ([]config.ManagerEntry, *errors.ValidationErrors) {
	entries := make([]config.ManagerEntry, 0, len(root.children))
	validationErrors := errors.NewValidationErrors()

	for _, child := range root.children {
		var entry config.ManagerEntry
		var ok bool

		switch child.name {
		case cacheRefElementName:
			entry, ok = p.parseCacheRef(child, validationErrors)
		case cacheClusterElementName:
			entry, ok = p.parseCacheCluster(child, validationErrors)
		case cacheElementName:
			entry, ok = p.parseCache(child, validationErrors)
		default:
			validationErrors.AddError(errors.NewUnknownElementError(child.name, child.line))
			continue
		}

		if ok {
			entries = append(entries, entry)
		}
	}

	return entries, validationErrors
}

// parseCacheRef yields a lookup-by-name placeholder
func (p *Parser) parseCacheRef(el *element, verrs *errors.ValidationErrors) (config.ManagerEntry, bool) {
	ref, ok := p.requiredAttribute(el, "ref", verrs)
	if !ok {
		return nil, false
	}
	return config.CacheReference{Ref: ref}, true
}

// parseCacheCluster yields a definition whose addresses are resolved from an
// ElastiCache cluster id. The cluster id doubles as the cache name.
func (p *Parser) parseCacheCluster(el *element, verrs *errors.ValidationErrors) (config.ManagerEntry, bool) {
	expiration, ok := p.expirationAttribute(el, verrs)
	if !ok {
		return nil, false
	}

	allowClearRaw, ok := p.requiredAttribute(el, "allowClear", verrs)
	if !ok {
		return nil, false
	}
	allowClear := config.ParseAllowClear(allowClearRaw)

	clusterRaw, ok := p.requiredAttribute(el, "cacheCluster", verrs)
	if !ok {
		return nil, false
	}
	clusterID, err := config.NewClusterID(clusterRaw)
	if err != nil {
		verrs.AddError(errors.NewValidationError(err.Error()).At(el.name, el.line))
		return nil, false
	}

	return config.CacheDefinition{
		ID:         config.NewDefinitionID(),
		Name:       config.CacheName(clusterID),
		Source:     config.SourceCluster,
		Cluster:    clusterID,
		Expiration: expiration,
		AllowClear: allowClear,
		Client:     config.DefaultClientConfiguration(),
	}, true
}

// parseCache yields a definition with a directly supplied address
func (p *Parser) parseCache(el *element, verrs *errors.ValidationErrors) (config.ManagerEntry, bool) {
	nameRaw, ok := p.requiredAttribute(el, "name", verrs)
	if !ok {
		return nil, false
	}
	name, err := config.NewCacheName(nameRaw)
	if err != nil {
		verrs.AddError(errors.NewValidationError(err.Error()).At(el.name, el.line))
		return nil, false
	}

	addressRaw, ok := p.requiredAttribute(el, "address", verrs)
	if !ok {
		return nil, false
	}
	address, err := config.NewEndpoint(addressRaw)
	if err != nil {
		verrs.AddError(errors.NewValidationError(err.Error()).At(el.name, el.line))
		return nil, false
	}

	expiration, ok := p.expirationAttribute(el, verrs)
	if !ok {
		return nil, false
	}

	allowClearRaw, ok := p.requiredAttribute(el, "allowClear", verrs)
	if !ok {
		return nil, false
	}

	return config.CacheDefinition{
		ID:         config.NewDefinitionID(),
		Name:       name,
		Source:     config.SourceStatic,
		Address:    address,
		Expiration: expiration,
		AllowClear: config.ParseAllowClear(allowClearRaw),
		Client:     config.DefaultClientConfiguration(),
	}, true
}

// requiredAttribute fetches an attribute that must be present and non-blank.
// On failure the error is recorded and the caller aborts the element.
func (p *Parser) requiredAttribute(el *element, name string, verrs *errors.ValidationErrors) (string, bool) {
	value := el.attr(name)
	if !hasText(value) {
		verrs.AddError(errors.NewMissingAttributeError(name, el.name, el.line))
		return "", false
	}
	return value, true
}

// expirationAttribute fetches and parses the required expiration attribute
func (p *Parser) expirationAttribute(el *element, verrs *errors.ValidationErrors) (config.Expiration, bool) {
	raw, ok := p.requiredAttribute(el, "expiration", verrs)
	if !ok {
		return 0, false
	}
	expiration, err := config.ParseExpiration(raw)
	if err != nil {
		verrs.AddError(errors.NewMalformedNumberError("expiration", raw, el.name, el.line))
		return 0, false
	}
	return expiration, true
}

// hasText reports whether the value contains non-whitespace characters
func hasText(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}
