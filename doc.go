/*
Package fa6latex generates the fontawesome6 LaTeX package from the icon
metadata shipped with a FontAwesome 6 desktop distribution.

It reads the vendor's icons.json (or icons.yml), derives one LaTeX control
sequence per icon and style, and writes a style file that also provides the
\faIcon{name} dispatch command.

# Architecture pipeline (for developers)

Each element in the pipeline has distinct sub-packages that do a specific part. These are then "glued" together in the [Run] function.
 1. [config]: Parse the user-supplied 'config.toml'
 2. [fetcher]: Optionally locate, download and unpack the FontAwesome desktop distribution
 3. [metadata]: Read the vendor metadata into an ordered icon catalog
 4. [macro]: Sanitize icon names and synthesize macro definitions plus the dispatch table
 5. [sty]: Serialize everything into the final fontawesome6.sty
*/
package fa6latex
